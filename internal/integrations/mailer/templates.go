package mailer

import (
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"github.com/caribeazul/CAB-BookingService/internal/domain"
)

// Шаблоны писем: таблица с деталями бронирования, правила и рабочие часы.
// Полноценная вёрстка живёт на стороне маркетинга, здесь только транзакционные письма.

var customerTemplate = template.Must(template.New("customer").Parse(`<!DOCTYPE html>
<html>
<body style="margin:0;padding:0;font-family:Arial,sans-serif;color:#333;">
  <div style="max-width:600px;margin:auto;">
    <div style="background-color:#004080;color:white;padding:25px;text-align:center;">
      <h1 style="margin:0;">Caribe Azul</h1>
      <p style="margin:10px 0 0 0;">Booking Confirmed!</p>
    </div>
    <div style="padding:20px;">
      <p>Thank you for choosing Caribe Azul! Your adventure is confirmed for
      <strong>{{.Date}}</strong> at <strong>{{.StartTime}}</strong>, pickup at <strong>{{.Pickup}}</strong>.</p>
      {{template "bookingTable" .}}
      <div style="margin:20px 0;padding:15px;background-color:#fff8e1;border-left:4px solid #ffc107;">
        <h3 style="margin-top:0;">Important Information</h3>
        <ul>
          {{range .Policies}}<li>{{.}}</li>
          {{end}}
          {{if .Amenities}}<li><strong>Complimentary amenities included:</strong> {{.Amenities}}</li>{{end}}
        </ul>
      </div>
      <div style="margin:20px 0;padding:15px;background-color:#e7f3ff;border-left:4px solid #004080;">
        <h3 style="margin-top:0;">Working Hours</h3>
        <p style="margin:0;">Monday - Thursday: 9:00 AM - 5:00 PM<br>Friday - Sunday: 9:00 AM - 6:00 PM</p>
      </div>
      <p>Please arrive at least 15 minutes before your scheduled pickup time and have your booking ID ready for check-in.</p>
      <p style="color:#004080;font-weight:bold;">The Caribe Azul Team</p>
    </div>
  </div>
</body>
</html>`))

var operatorTemplate = template.Must(template.New("operator").Parse(`<!DOCTYPE html>
<html>
<body style="font-family:Arial,sans-serif;color:#333;">
  <div style="background-color:#004080;color:white;padding:15px;text-align:center;">
    <h2 style="margin:0;">NEW BOOKING RECEIVED</h2>
    <p style="margin:5px 0 0 0;">{{.BookingID}} | {{.Date}} at {{.StartTime}}</p>
  </div>
  <div style="padding:20px;">
    {{template "bookingTable" .}}
    <div style="background-color:#fff3cd;padding:10px;border-left:4px solid #ffc107;">
      <p><strong>Customer:</strong> {{.CustomerName}} ({{.CustomerEmail}})</p>
      <p><strong>Payment Status:</strong> Paid (${{.Total}})</p>
    </div>
    <p><strong>Action Required:</strong> Please prepare the equipment for {{.Date}}.</p>
    {{if .Amenities}}<p style="color:#155724;font-weight:bold;">Includes complimentary amenities</p>{{end}}
  </div>
</body>
</html>`))

var bookingTableTemplate = `{{define "bookingTable"}}<table style="width:100%;border-collapse:collapse;border:1px solid #ddd;">
  <tr style="background-color:#004080;color:white;"><th colspan="2" style="padding:10px;">Booking Details</th></tr>
  <tr><td style="padding:8px;font-weight:bold;">Booking ID</td><td style="padding:8px;">{{.BookingID}}</td></tr>
  <tr><td style="padding:8px;font-weight:bold;">Rental</td><td style="padding:8px;">{{.Rental}}</td></tr>
  <tr><td style="padding:8px;font-weight:bold;">Pickup Location</td><td style="padding:8px;">{{.Pickup}}</td></tr>
  {{if .Destination}}<tr><td style="padding:8px;font-weight:bold;">Destination</td><td style="padding:8px;">{{.Destination}}</td></tr>{{end}}
  <tr><td style="padding:8px;font-weight:bold;">Date</td><td style="padding:8px;">{{.Date}}</td></tr>
  <tr><td style="padding:8px;font-weight:bold;">Pickup Time</td><td style="padding:8px;">{{.StartTime}}</td></tr>
  <tr><td style="padding:8px;font-weight:bold;">Duration</td><td style="padding:8px;">{{.Duration}}</td></tr>
  <tr><td style="padding:8px;font-weight:bold;">People</td><td style="padding:8px;">{{.People}}</td></tr>
  <tr><td style="padding:8px;font-weight:bold;">Water Sports</td><td style="padding:8px;">{{.WaterSports}}</td></tr>
  <tr style="background-color:#f8f9fa;"><td style="padding:8px;font-weight:bold;">Total Cost</td><td style="padding:8px;font-weight:bold;color:#d9534f;">${{.Total}}</td></tr>
</table>{{end}}`

func init() {
	template.Must(customerTemplate.Parse(bookingTableTemplate))
	template.Must(operatorTemplate.Parse(bookingTableTemplate))
}

type templateData struct {
	BookingID     string
	Rental        string
	Pickup        string
	Destination   string
	Date          string
	StartTime     string
	Duration      string
	People        int
	WaterSports   string
	Total         string
	CustomerName  string
	CustomerEmail string
	Policies      []string
	Amenities     string
}

func newTemplateData(b *domain.Booking) templateData {
	data := templateData{
		BookingID:     b.ID,
		Rental:        rentalLabel(b),
		Pickup:        string(b.Pickup),
		Date:          b.BookingDate.Format(domain.DateFormat),
		StartTime:     b.StartTime.String(),
		Duration:      durationLabel(b.DurationHours),
		People:        b.People,
		WaterSports:   sportsLabel(b.WaterSports),
		Total:         formatMoney(b.Total),
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		Policies:      domain.BookingPolicies,
	}
	if b.Destination != nil {
		data.Destination = string(*b.Destination)
	}
	if domain.HasComplimentaryAmenities(b.Config()) {
		data.Amenities = strings.Join(domain.ComplimentaryAmenities, ", ")
	}
	return data
}

func renderCustomerConfirmation(b *domain.Booking) (string, error) {
	var sb strings.Builder
	if err := customerTemplate.Execute(&sb, newTemplateData(b)); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func renderOperatorNotification(b *domain.Booking) (string, error) {
	var sb strings.Builder
	if err := operatorTemplate.Execute(&sb, newTemplateData(b)); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func rentalLabel(b *domain.Booking) string {
	switch b.RentalType {
	case domain.RentalJetSki:
		return plural(b.JetSkis, "Jet Ski")
	case domain.RentalBoat:
		return "1 Boat"
	case domain.RentalBoatAndJetSki:
		return "1 Boat + " + plural(b.JetSkis, "Jet Ski")
	default:
		return string(b.RentalType)
	}
}

func durationLabel(hours float64) string {
	switch hours {
	case 0.25:
		return "15 minutes"
	case 0.5:
		return "30 minutes"
	case 1:
		return "1 hour"
	default:
		return strconv.FormatFloat(hours, 'f', -1, 64) + " hours"
	}
}

func sportsLabel(sports map[domain.WaterSport]int) string {
	if len(sports) == 0 {
		return "None"
	}
	names := make([]string, 0, len(sports))
	for sport := range sports {
		names = append(names, string(sport))
	}
	return strings.Join(names, ", ")
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func formatMoney(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
