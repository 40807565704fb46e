package email

// Template names used by the services.
const (
	TemplateOrderConfirmation = "order_confirmation"
	TemplateContactForm       = "contact_email"
)

var defaultTemplates = map[string]string{
	TemplateOrderConfirmation: `<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Thank you for your order{{if .name}}, {{.name}}{{end}}!</h2>
  <p>Your order <strong>{{.order_id}}</strong> was placed on {{.order_date}}.</p>
  <table cellpadding="6" cellspacing="0" border="1" style="border-collapse: collapse;">
    <tr><th>Item</th><th>Quantity</th><th>Price</th></tr>
    {{range .items}}
    <tr><td>{{.Name}}</td><td>{{.Quantity}}</td><td>{{.Price}}</td></tr>
    {{end}}
  </table>
  <p><strong>Total: {{.total}}</strong></p>
  <p>We will notify you when your order is accepted.</p>
</body>
</html>`,

	TemplateContactForm: `<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>New Contact Message: {{.subject}}</h2>
  <p><strong>From:</strong> {{.full_name}} ({{.email}})</p>
  {{if .phone}}<p><strong>Phone:</strong> {{.phone}}</p>{{end}}
  <p>{{.message}}</p>
</body>
</html>`,
}
