package main

import (
	_ "geds_checkout/docs"
	"geds_checkout/internal/adapter/http/routes"
	_ "time/tzdata"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Checkout Service API
// @version         1.0
// @description     GEDS checkout: pricing with voucher, PIX/boleto/card artifacts, submission and payment history.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
