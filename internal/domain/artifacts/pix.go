package artifacts

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"geds_checkout/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

const (
	pixGUI          = "BR.GOV.BCB.PIX"
	pixCategoryCode = "0000"
	pixCurrencyBRL  = "986"
	pixCountryCode  = "BR"
	pixTxID         = "***"

	maxMerchantName = 25
	maxMerchantCity = 15
	maxTLVValue     = 99

	qrCodeEndpoint = "https://api.qrserver.com/v1/create-qr-code/"
)

// PixMerchant identifies the receiver encoded in the PIX payload.
type PixMerchant struct {
	Key  string
	Name string
	City string
}

var ErrPixKeyTooLong = errors.New("pix key too long")

var DefaultPixMerchant = PixMerchant{
	Key:  "+5548999999999",
	Name: "GEDS INOVACAO",
	City: "BRASILIA",
}

// PixPayload builds the static BR Code ("copia e cola") for amount.
//
// Every field is ID + two-digit length + value. The payload ends with field 63
// holding the CRC16-CCITT of everything before it, including "6304". Values
// that cannot be written with a two-digit length are refused.
func PixPayload(m PixMerchant, amount decimal.Decimal) (string, error) {
	if !pricing.ValidAmount(amount) {
		return "", fmt.Errorf("pix amount: %w", pricing.ErrAmountOutOfRange)
	}
	if len(tlv("00", pixGUI))+len(tlv("01", m.Key)) > maxTLVValue {
		return "", ErrPixKeyTooLong
	}

	var b strings.Builder
	b.WriteString(tlv("00", "01"))
	b.WriteString(tlv("26", tlv("00", pixGUI)+tlv("01", m.Key)))
	b.WriteString(tlv("52", pixCategoryCode))
	b.WriteString(tlv("53", pixCurrencyBRL))
	b.WriteString(tlv("54", amount.StringFixed(2)))
	b.WriteString(tlv("58", pixCountryCode))
	b.WriteString(tlv("59", truncate(m.Name, maxMerchantName)))
	b.WriteString(tlv("60", truncate(m.City, maxMerchantCity)))
	b.WriteString(tlv("62", tlv("05", pixTxID)))
	b.WriteString("6304")

	body := b.String()
	return body + fmt.Sprintf("%04X", crc16CCITT([]byte(body))), nil
}

// PixQRCodeURL returns an image URL rendering payload as a 150x150 QR code.
func PixQRCodeURL(payload string) string {
	q := url.Values{}
	q.Set("size", "150x150")
	q.Set("data", payload)
	return qrCodeEndpoint + "?" + q.Encode()
}

func tlv(id, value string) string {
	return fmt.Sprintf("%s%02d%s", id, len(value), value)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// crc16CCITT is CRC-16/CCITT-FALSE (poly 0x1021, init 0xFFFF).
func crc16CCITT(data []byte) uint16 {
	crc := uint16(0xFFFF)
	for _, c := range data {
		crc ^= uint16(c) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
