package notifications

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/millynails/MN-BookingService/internal/domain"
)

var nonDigits = regexp.MustCompile(`\D`)

// whatsappAddress normalises a client phone number into a Brazilian
// WhatsApp address: digits only, prefixed with the country code.
func whatsappAddress(phone string) string {
	return "whatsapp:+55" + nonDigits.ReplaceAllString(phone, "")
}

var weekdaysPT = [...]string{
	"domingo", "segunda-feira", "terça-feira", "quarta-feira",
	"quinta-feira", "sexta-feira", "sábado",
}

var monthsPT = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// formatDatePT renders a date the way the clients read it:
// "sexta-feira, 17 de outubro de 2025"
func formatDatePT(date time.Time) string {
	return fmt.Sprintf("%s, %d de %s de %d",
		weekdaysPT[date.Weekday()], date.Day(), monthsPT[date.Month()-1], date.Year())
}

func confirmationBody(appt *domain.Appointment) string {
	return fmt.Sprintf("✨ *Milly Nails* ✨\n\nOlá %s! 💅\n\nSeu agendamento foi confirmado:\n\n📅 %s\n🕐 %s\n💎 %s\n\nNos vemos em breve! 🌸",
		appt.ClientName, formatDatePT(appt.Date), appt.StartTime, appt.ServiceName)
}

func adminNewAppointmentBody(appt *domain.Appointment) string {
	return fmt.Sprintf("🔔 *Novo Agendamento*\n\n👤 Cliente: %s\n📱 Tel: %s\n💎 Serviço: %s\n📅 Data: %s\n🕐 Horário: %s",
		appt.ClientName, appt.ClientPhone, appt.ServiceName, formatDatePT(appt.Date), appt.StartTime)
}

func reminderBody(appt *domain.Appointment) string {
	return fmt.Sprintf("✨ *Milly Nails* ✨\n\nOlá %s! 💅\n\n🔔 Lembrete:\n\nVocê tem agendamento *hoje* às *%s*\n💎 %s\n\nTe esperamos! 🌸",
		appt.ClientName, appt.StartTime, appt.ServiceName)
}

func adminDigestBody(appts []*domain.Appointment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "☀️ *Bom dia!*\n\n📋 Agendamentos de hoje (%d):\n\n", len(appts))
	for i, appt := range appts {
		fmt.Fprintf(&b, "%d. %s - %s\n   %s\n\n", i+1, appt.StartTime, appt.ClientName, appt.ServiceName)
	}
	return b.String()
}
