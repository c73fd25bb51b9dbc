package notify

import (
	"fmt"
	"html/template"
	"strings"
)

// contactEmailTemplate mirrors the contact notification layout used by
// the site. Kept deliberately simple: inline styles, no images.
var contactEmailTemplate = template.Must(template.New("contact").Parse(`<html>
<body style="background-color:#f6f9fc;font-family:-apple-system,'Segoe UI',Roboto,sans-serif;">
  <div style="background-color:#ffffff;margin:0 auto;padding:20px 24px 48px;max-width:560px;">
    <h1>New Contact Form Submission</h1>
    <p>You've received a new message from the contact form:</p>
    <p><strong>Name:</strong> {{.Name}}</p>
    <p><strong>Email:</strong> <a href="mailto:{{.Email}}">{{.Email}}</a></p>
    {{if .Company}}<p><strong>Company:</strong> {{.Company}}</p>{{end}}
    <p><strong>Message:</strong></p>
    <blockquote style="background:#f4f4f5;padding:12px;border-radius:4px;">{{.Message}}</blockquote>
    <p style="color:#8898aa;font-size:12px;">Received: {{.CreatedAt.Format "Monday, January 2, 2006 at 3:04 PM MST"}}</p>
    <hr/>
    <p style="color:#8898aa;font-size:12px;">Reply directly to <a href="mailto:{{.Email}}">{{.Email}}</a> to respond to this inquiry.</p>
  </div>
</body>
</html>`))

func renderContactEmail(data ContactData) (string, error) {
	var sb strings.Builder
	if err := contactEmailTemplate.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("render contact email: %w", err)
	}
	return sb.String(), nil
}

func contactEmailSubject(data ContactData) string {
	return fmt.Sprintf("New contact form submission from %s", data.Name)
}
