// Package notify renders the Indonesian payment reminder messages sent
// to tenants over WhatsApp. One template exists per payment status;
// any other status yields an empty body, which callers treat as
// "nothing to send" rather than an error.
package notify

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"kostmanager/kost"
)

// DefaultPropertyName signs the message when no property name is
// configured in settings.
const DefaultPropertyName = "KostManager Property"

// ReminderMessage renders the reminder body for a payment, keyed by its
// stored status and interpolating the tenant name, the billing period
// (month and year of the due date) and the formatted due date.
func ReminderMessage(propertyName, tenantName string, p kost.Payment) string {
	if propertyName == "" {
		propertyName = DefaultPropertyName
	}
	month := p.DueDate.Month().String()
	year := p.DueDate.Year()
	due := formatDate(p.DueDate)

	switch p.Status {
	case kost.PaymentPaid:
		return fmt.Sprintf("Halo %s,\n\nTerima kasih telah menyelesaikan pembayaran sewa untuk periode %s %d. Kami sangat menghargai ketepatan Anda dalam melakukan pembayaran.\n\nBerikut adalah kwitansi pembayaran Anda:\n[Link Kwitansi]\n\nJika ada pertanyaan atau membutuhkan bantuan lebih lanjut, jangan ragu untuk menghubungi kami.\n\nSalam hangat,\nManajemen %s",
			tenantName, month, year, propertyName)
	case kost.PaymentPending:
		return fmt.Sprintf("Halo %s,\n\nKami ingin mengingatkan bahwa pembayaran sewa untuk periode %s %d masih belum diterima. Berikut adalah rincian tagihan Anda:\n\n[Link invoice]\n\nMohon segera menyelesaikan pembayaran paling lambat %s. Jika Anda membutuhkan informasi tambahan atau bantuan terkait pembayaran, silakan hubungi kami.\n\nTerima kasih atas perhatiannya.\n\nSalam hangat,\nManajemen %s",
			tenantName, month, year, due, propertyName)
	case kost.PaymentOverdue:
		return fmt.Sprintf("Halo %s,\n\nKami mencatat bahwa pembayaran sewa untuk periode %s %d belum diterima hingga saat ini. Pembayaran telah melewati batas waktu yang ditentukan pada %s.\n\nMohon segera menyelesaikan pembayaran Anda untuk menghindari denda keterlambatan atau tindakan lebih lanjut. Jika Anda mengalami kendala, silakan segera hubungi kami agar kami dapat membantu mencari solusi.\n\nTerima kasih atas perhatian dan kerja sama Anda.\n\nSalam hangat,\nManajemen %s",
			tenantName, month, year, due, propertyName)
	}
	return ""
}

// Encode percent-encodes a message body for transport in a URL, with
// spaces as %20 rather than +.
func Encode(message string) string {
	return strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
}

// WhatsAppLink builds the wa.me link carrying an already-encoded
// message for the given phone number.
func WhatsAppLink(phone, encodedMessage string) string {
	return "https://wa.me/" + NormalizePhone(phone) + "?text=" + encodedMessage
}

// NormalizePhone rewrites a local Indonesian number (leading 0) into
// international form for wa.me.
func NormalizePhone(phone string) string {
	if strings.HasPrefix(phone, "0") {
		return "62" + phone[1:]
	}
	return phone
}

func formatDate(t time.Time) string {
	return t.Format("2 January 2006")
}
