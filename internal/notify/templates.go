package notify

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/mgv-tech/backoffice/internal/domain/model"
)

const brandName = "Marshall Global Ventures"

// layout wraps every message body with the branded header and footer
// used across all transactional mail.
var layout = template.Must(template.New("layout").Parse(`
<div style="max-width:580px;margin:auto;border-radius:8px;border:1px solid #e0e0e0;background:#fff;overflow:hidden;font-family:'Inter',sans-serif;">
  <div style="background:#00B9F1;padding:24px 0;text-align:center;">
    <h1 style="color:#fff;margin:0;font-size:2.2rem;font-weight:700;">Marshall Global Ventures</h1>
  </div>
  <div style="padding:32px 24px 24px 24px;color:#222;line-height:1.6;">{{.Body}}</div>
  <div style="background:#f0f0f0;padding:24px;text-align:center;color:#666;font-size:0.85rem;border-top:1px solid #e5e5e5;">
    <p style="margin:0 0 8px 0;">&copy; 2025 Marshall Global Ventures. All rights reserved.</p>
    <p style="margin:0 0 8px 0;">123 Ikorodu Road, Lagos, Nigeria</p>
    <p style="margin:0;">Email: <a href="mailto:info@mgv-tech.com" style="color:#00B9F1;">info@mgv-tech.com</a></p>
  </div>
</div>`))

var bodies = template.Must(template.New("bodies").Parse(`
{{define "orderSummary"}}
<h3>Order Summary</h3>
<p><strong>Order Number:</strong> {{.Order.Number}}</p>
<p><strong>Status:</strong> {{.Order.Status}}</p>
<p><strong>Total Amount:</strong> &#8358;{{printf "%.2f" .Order.TotalPrice}}</p>
<p><strong>Payment Method:</strong> {{.Order.PaymentMethod}}</p>
<p><strong>Payment Status:</strong> {{if .Order.IsPaid}}Paid{{else}}Not Paid{{end}}</p>
<h3>Items Ordered</h3>
<ul>{{range .Order.Items}}<li>{{.Name}} x {{.Quantity}} (&#8358;{{printf "%.2f" .Price}})</li>{{end}}</ul>
<h3>Shipping Details</h3>
<p>{{.Order.ShippingAddress.Address1}}, {{.Order.ShippingAddress.City}}, {{.Order.ShippingAddress.ZipCode}}, {{.Order.ShippingAddress.Country}}</p>
{{end}}

{{define "orderCreatedCustomer"}}
<h2>Hi {{.User.Name}}</h2>
<p>Thank you for placing your order with Marshall Global Ventures with order number: {{.Order.Number}}</p>
<p>We have received your request and are currently processing it.</p>
{{template "orderSummary" .}}
<p>We will notify you once your order is shipped. In the meantime you can track your order status on <a href="{{.FrontendURL}}/app/trackorder">our website</a>.</p>
<p>Thank you for shopping with us!</p>
{{end}}

{{define "orderCreatedAdmin"}}
<h2>New Order Placed</h2>
<p>A new order has been placed by <strong>{{.User.Name}}</strong> ({{.User.Email}}).</p>
{{template "orderSummary" .}}
<p>Please log in to your dashboard to review the order details and proceed with processing.</p>
{{end}}

{{define "orderDeliveredCustomer"}}
<h2>Order Delivered - {{.Order.Number}}</h2>
<p>Hi {{.User.Name}}, your order has been marked as <strong>Delivered</strong>.</p>
<p><strong>Order Number:</strong> {{.Order.Number}}</p>
<p><strong>Total:</strong> &#8358;{{printf "%.2f" .Order.TotalPrice}}</p>
{{end}}

{{define "orderDeliveredAdmin"}}
<h2>Order Status Update: Delivered</h2>
<p>Order <strong>{{.Order.Number}}</strong> for {{.User.Name}} ({{.User.Email}}) has been marked as Delivered.</p>
<p><strong>Total Amount:</strong> &#8358;{{printf "%.2f" .Order.TotalPrice}}</p>
<p><a href="{{.FrontendURL}}/app/vieworderdetails/{{.Order.ID}}">View Order in Admin Panel</a></p>
{{end}}

{{define "orderStatusCustomer"}}
<h3>Hi {{.User.Name}}</h3>
<p>The status of your order {{.Order.Number}} has been updated.</p>
<p><strong>Current Status:</strong> {{.Order.Status}}</p>
<p><strong>Order Total:</strong> &#8358;{{printf "%.2f" .Order.TotalPrice}}</p>
<p><a href="{{.FrontendURL}}/app/trackorder">Track your order status here.</a></p>
{{end}}

{{define "orderStatusAdmin"}}
<h3>Hi Team,</h3>
<p>Order {{.Order.Number}} has been updated.</p>
<p><strong>Customer:</strong> {{.User.Name}}</p>
<p><strong>Current Status:</strong> {{.Order.Status}}</p>
<p><strong>Order Total:</strong> &#8358;{{printf "%.2f" .Order.TotalPrice}}</p>
{{end}}

{{define "welcomeCustomer"}}
<p>Hi {{.User.Name}},</p>
<h2>Your Account Has Been Created!</h2>
<p>We are thrilled to welcome you to the Marshall Global Ventures community.</p>
<p>You can now log in to manage your profile, view your orders, track quote requests, and explore our services.</p>
<p><a href="{{.FrontendURL}}/login">Log In to Your Account</a></p>
{{end}}

{{define "welcomeAdmin"}}
<h2>New User Registration Notification</h2>
<ul>
  <li><strong>Name:</strong> {{.User.Name}}</li>
  <li><strong>Email:</strong> {{.User.Email}}</li>
  <li><strong>Role:</strong> {{.User.Role}}</li>
</ul>
<p><a href="{{.FrontendURL}}/app/allusers">View User in Admin Dashboard</a></p>
{{end}}

{{define "passwordReset"}}
<p>Hi {{.User.Name}},</p>
<h2>Password Reset Requested</h2>
<p>We received a request to reset the password for your account. The link below is valid for one hour.</p>
<p><a href="{{.ResetURL}}">Reset Your Password</a></p>
<p>If you did not request this, you can safely ignore this email.</p>
{{end}}

{{define "quoteReceivedCustomer"}}
<p>Hi {{.Quote.Name}},</p>
<h2>We Received Your Quote Request</h2>
<p>Thank you for requesting a quote for <strong>{{.Quote.Service}}</strong>. Our team will get back to you shortly.</p>
{{end}}

{{define "quoteReceivedAdmin"}}
<h2>New Quote Request</h2>
<ul>
  <li><strong>Name:</strong> {{.Quote.Name}}</li>
  <li><strong>Email:</strong> {{.Quote.Email}}</li>
  <li><strong>Service:</strong> {{.Quote.Service}}</li>
</ul>
<p>{{.Quote.Message}}</p>
{{end}}

{{define "quoteAssigned"}}
<p>Hi {{.User.Name}},</p>
<h2>A Quote Request Has Been Assigned to You</h2>
<p>Quote request from <strong>{{.Quote.Name}}</strong> ({{.Quote.Email}}) for <strong>{{.Quote.Service}}</strong> is now yours to handle.</p>
{{end}}

{{define "quoteReplyCustomer"}}
<p>Hi {{.Quote.Name}},</p>
<h2>Update on Your Quote Request</h2>
<p>Our team has replied to your quote request for <strong>{{.Quote.Service}}</strong>:</p>
<blockquote>{{.Reply.Message}}</blockquote>
{{end}}

{{define "quoteReplyAdmin"}}
<h2>Customer Reply on Quote Request</h2>
<p><strong>{{.Quote.Name}}</strong> ({{.Quote.Email}}) replied on the quote for <strong>{{.Quote.Service}}</strong>:</p>
<blockquote>{{.Reply.Message}}</blockquote>
{{end}}

{{define "subscriberWelcome"}}
<h2>You're Subscribed!</h2>
<p>Thanks for subscribing to the Marshall Global Ventures newsletter.</p>
<p><a href="{{.UnsubscribeURL}}">Unsubscribe</a> at any time.</p>
{{end}}

{{define "newsletterIssue"}}
{{.Content}}
<p style="margin-top:24px;font-size:0.85rem;"><a href="{{.UnsubscribeURL}}">Unsubscribe</a></p>
{{end}}
`))

type templateData struct {
	Order          *model.Order
	User           *model.User
	Quote          *model.QuoteRequest
	Reply          *model.QuoteReply
	Content        template.HTML
	FrontendURL    string
	ResetURL       string
	UnsubscribeURL string
}

func render(name string, data templateData) (string, error) {
	var body strings.Builder
	if err := bodies.ExecuteTemplate(&body, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	var out strings.Builder
	err := layout.Execute(&out, struct{ Body template.HTML }{Body: template.HTML(body.String())})
	if err != nil {
		return "", fmt.Errorf("render layout: %w", err)
	}
	return out.String(), nil
}
