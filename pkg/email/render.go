package email

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"
)

// Fixed human-readable formats for notification bodies. The plain-text and
// HTML variants are rendered from the same resolved view so they cannot
// drift apart.
const (
	dateLayout = "January 2, 2006 15:04"

	notSpecified          = "Not specified"
	addressNotSpecified   = "address not specified"
	tellDriverPlaceholder = "customer will tell the driver"
)

var paymentMethodLabels = map[string]string{
	"cash":   "Cash",
	"card":   "Bank card",
	"online": "Online payment",
}

// PaymentMethodLabel maps a payment method code to its display label.
// Unrecognized codes pass through verbatim.
func PaymentMethodLabel(code string) string {
	if code == "" {
		return notSpecified
	}
	if label, ok := paymentMethodLabels[code]; ok {
		return label
	}
	return code
}

func orNotSpecified(s string) string {
	if strings.TrimSpace(s) == "" {
		return notSpecified
	}
	return s
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

// ContactNotification carries the fields of a persisted contact request
// needed to render its admin notification.
type ContactNotification struct {
	RequestID int64
	Name      string
	Email     string
	Phone     string // empty when not submitted
	Message   string
}

type contactView struct {
	RequestID int64
	Name      string
	Email     string
	Phone     string
	Message   string
}

func (n ContactNotification) view() contactView {
	return contactView{
		RequestID: n.RequestID,
		Name:      n.Name,
		Email:     n.Email,
		Phone:     orNotSpecified(n.Phone),
		Message:   n.Message,
	}
}

func (n ContactNotification) Subject() string {
	return fmt.Sprintf("New Royal Transfer website request from %s", n.Name)
}

func (n ContactNotification) Text() string {
	v := n.view()
	return fmt.Sprintf(`A new request was submitted on the website:

Name: %s
Email: %s
Phone: %s
Message:
%s

Request ID: %d`, v.Name, v.Email, v.Phone, v.Message, v.RequestID)
}

var contactTemplate = template.Must(template.New("contact").Parse(`<h2>New Royal Transfer website request</h2>
<p><strong>Request ID:</strong> {{.RequestID}}</p>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> <a href="mailto:{{.Email}}">{{.Email}}</a></p>
<p><strong>Phone:</strong> {{.Phone}}</p>
<p><strong>Message:</strong></p>
<blockquote style="margin: 10px 0; padding: 10px; border-left: 4px solid #ccc; background-color: #f9f9f9; white-space: pre-wrap;">{{.Message}}</blockquote>
<hr>
<p><small>This is an automated notification. The request has been saved to the database.</small></p>`))

func (n ContactNotification) HTML() (string, error) {
	var body bytes.Buffer
	if err := contactTemplate.Execute(&body, n.view()); err != nil {
		return "", fmt.Errorf("failed to execute contact email template: %w", err)
	}
	return body.String(), nil
}

// TransferNotification carries the fields of a persisted transfer request
// needed to render its admin notification.
type TransferNotification struct {
	RequestID          int64
	CustomerName       string
	CustomerPhone      string
	Date               time.Time
	ReturnTransfer     bool
	ReturnDate         *time.Time
	OriginCity         string
	OriginAddress      string
	DestinationCity    string
	DestinationAddress string
	TellDriver         bool
	VehicleClass       string
	PaymentMethod      string
	Comments           string
}

type transferView struct {
	RequestID      int64
	CustomerName   string
	CustomerPhone  string
	Origin         string
	Destination    string
	Date           string
	VehicleClass   string
	PaymentMethod  string
	ReturnTransfer string
	HasReturn      bool
	ReturnDate     string
	HasComments    bool
	Comments       string
}

func (n TransferNotification) view() transferView {
	v := transferView{
		RequestID:      n.RequestID,
		CustomerName:   n.CustomerName,
		CustomerPhone:  n.CustomerPhone,
		Origin:         orNotSpecified(n.OriginCity) + ", " + orDefault(n.OriginAddress, addressNotSpecified),
		Date:           n.Date.Format(dateLayout),
		VehicleClass:   orNotSpecified(n.VehicleClass),
		PaymentMethod:  PaymentMethodLabel(n.PaymentMethod),
		ReturnTransfer: "No",
		HasComments:    strings.TrimSpace(n.Comments) != "",
		Comments:       n.Comments,
	}

	// When the customer prefers to tell the driver in person, the submitted
	// destination address is suppressed in favor of a fixed placeholder.
	destination := orDefault(n.DestinationAddress, addressNotSpecified)
	if n.TellDriver {
		destination = tellDriverPlaceholder
	}
	v.Destination = orNotSpecified(n.DestinationCity) + ", " + destination

	if n.ReturnTransfer {
		v.ReturnTransfer = "Yes"
		v.HasReturn = true
		v.ReturnDate = notSpecified
		if n.ReturnDate != nil {
			v.ReturnDate = n.ReturnDate.Format(dateLayout)
		}
	}
	return v
}

func (n TransferNotification) Subject() string {
	return fmt.Sprintf("New transfer order #%d from %s", n.RequestID, n.CustomerName)
}

func (n TransferNotification) Text() string {
	v := n.view()
	var b strings.Builder
	b.WriteString("A new transfer order was submitted on the website:\n\n")
	b.WriteString("Customer information:\n")
	fmt.Fprintf(&b, "Name: %s\n", v.CustomerName)
	fmt.Fprintf(&b, "Phone: %s\n\n", v.CustomerPhone)
	b.WriteString("Transfer information:\n")
	fmt.Fprintf(&b, "From: %s\n", v.Origin)
	fmt.Fprintf(&b, "To: %s\n", v.Destination)
	fmt.Fprintf(&b, "Date and time: %s\n", v.Date)
	fmt.Fprintf(&b, "Vehicle class: %s\n", v.VehicleClass)
	fmt.Fprintf(&b, "Payment method: %s\n", v.PaymentMethod)
	fmt.Fprintf(&b, "Return transfer: %s\n", v.ReturnTransfer)
	if v.HasReturn {
		fmt.Fprintf(&b, "Return date and time: %s\n", v.ReturnDate)
	}
	if v.HasComments {
		fmt.Fprintf(&b, "\nCustomer comments:\n%s\n", v.Comments)
	}
	fmt.Fprintf(&b, "\nRequest ID: %d", v.RequestID)
	return b.String()
}

var transferTemplate = template.Must(template.New("transfer").Parse(`<h2>New Royal Transfer order</h2>
<p><strong>Order ID:</strong> {{.RequestID}}</p>
<h3>Customer information:</h3>
<p><strong>Name:</strong> {{.CustomerName}}</p>
<p><strong>Phone:</strong> {{.CustomerPhone}}</p>
<h3>Transfer information:</h3>
<p><strong>From:</strong> {{.Origin}}</p>
<p><strong>To:</strong> {{.Destination}}</p>
<p><strong>Date and time:</strong> {{.Date}}</p>
<p><strong>Vehicle class:</strong> {{.VehicleClass}}</p>
<p><strong>Payment method:</strong> {{.PaymentMethod}}</p>
<p><strong>Return transfer:</strong> {{.ReturnTransfer}}</p>
{{if .HasReturn}}<p><strong>Return date and time:</strong> {{.ReturnDate}}</p>
{{end}}{{if .HasComments}}<h3>Customer comments:</h3>
<blockquote style="margin: 10px 0; padding: 10px; border-left: 4px solid #ccc; background-color: #f9f9f9; white-space: pre-wrap;">{{.Comments}}</blockquote>
{{end}}<hr>
<p><small>This is an automated notification. The order has been saved to the database.</small></p>`))

func (n TransferNotification) HTML() (string, error) {
	var body bytes.Buffer
	if err := transferTemplate.Execute(&body, n.view()); err != nil {
		return "", fmt.Errorf("failed to execute transfer email template: %w", err)
	}
	return body.String(), nil
}
