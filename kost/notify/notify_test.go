package notify_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"kostmanager/kost"
	"kostmanager/kost/notify"
)

func payment(status kost.PaymentStatus) kost.Payment {
	return kost.Payment{
		Status:  status,
		DueDate: time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestReminderMessageTemplates(t *testing.T) {
	paid := notify.ReminderMessage("", "Budi Santoso", payment(kost.PaymentPaid))
	assert.Contains(t, paid, "Halo Budi Santoso")
	assert.Contains(t, paid, "Terima kasih")
	assert.Contains(t, paid, "January 2024")
	assert.Contains(t, paid, notify.DefaultPropertyName)

	pending := notify.ReminderMessage("Kos Melati", "Siti Rahayu", payment(kost.PaymentPending))
	assert.Contains(t, pending, "masih belum diterima")
	assert.Contains(t, pending, "10 January 2024")
	assert.Contains(t, pending, "Manajemen Kos Melati")

	overdue := notify.ReminderMessage("", "Siti Rahayu", payment(kost.PaymentOverdue))
	assert.Contains(t, overdue, "melewati batas waktu")
	assert.Contains(t, overdue, "10 January 2024")
}

func TestReminderMessageUnknownStatus(t *testing.T) {
	// No template for other statuses: empty body, not an error.
	msg := notify.ReminderMessage("", "Budi Santoso", payment(kost.PaymentStatus("cancelled")))
	assert.Empty(t, msg)
}

func TestEncode(t *testing.T) {
	enc := notify.Encode("Halo Budi,\n\nTerima kasih")
	assert.NotContains(t, enc, " ")
	assert.NotContains(t, enc, "+")
	assert.Contains(t, enc, "%20")
	assert.Contains(t, enc, "%0A")
}

func TestWhatsAppLink(t *testing.T) {
	link := notify.WhatsAppLink("081234567801", "hello")
	assert.Equal(t, "https://wa.me/6281234567801?text=hello", link)

	// Numbers already in international form pass through.
	link = notify.WhatsAppLink("6281234567801", "hello")
	assert.True(t, strings.HasPrefix(link, "https://wa.me/6281234567801"))
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "6281234", notify.NormalizePhone("081234"))
	assert.Equal(t, "6281234", notify.NormalizePhone("6281234"))
}
