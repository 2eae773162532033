package entity

import "fmt"

// Prefijos y secuencias de los números legibles.
const (
	InquiryNumberPrefix = "INQ"
	OrderNumberPrefix   = "ORD"

	InquirySequence = "inquiries"
	OrderSequence   = "orders"

	numberWidth = 6
)

// FormatNumber arma "<PREFIX>-<n>" con n rellenado con ceros a 6 dígitos.
// Valores con más dígitos no se truncan.
func FormatNumber(prefix string, n int64) string {
	return fmt.Sprintf("%s-%0*d", prefix, numberWidth, n)
}
