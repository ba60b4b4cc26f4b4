package mail

import (
	"bytes"
	"html/template"
)

const contactAckSubject = "📩 New Contact Message: Contact Message"

// ContactAckData fills the acknowledgment templates sent after a visitor
// submits the contact form.
type ContactAckData struct {
	SiteName string
	SiteURL  string
	SiteLogo string
	Name     string
	Email    string
	From     string
	Message  string
	Year     int
}

const contactAckHTML = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="margin:0;padding:0;background-color:#f4f4f7;font-family:Helvetica,Arial,sans-serif;">
  <table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="background-color:#f4f4f7;padding:24px 0;">
    <tr>
      <td align="center">
        <table role="presentation" width="560" cellpadding="0" cellspacing="0" style="background-color:#ffffff;border-radius:8px;overflow:hidden;">
          <tr>
            <td style="background-color:#1a1a2e;padding:24px;text-align:center;">
              <img src="{{.SiteLogo}}" alt="{{.SiteName}}" height="48" style="display:inline-block;">
            </td>
          </tr>
          <tr>
            <td style="padding:32px;">
              <h2 style="margin:0 0 16px;color:#1a1a2e;">Thanks for reaching out, {{.Name}}!</h2>
              <p style="margin:0 0 16px;color:#51545e;line-height:1.6;">
                Your message has been received and I will get back to you at
                <a href="mailto:{{.Email}}" style="color:#3869d4;">{{.Email}}</a> as soon as possible.
              </p>
              <table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="background-color:#f4f4f7;border-radius:4px;">
                <tr>
                  <td style="padding:16px;color:#51545e;font-style:italic;line-height:1.6;">{{.Message}}</td>
                </tr>
              </table>
              <p style="margin:24px 0 0;color:#51545e;line-height:1.6;">
                Meanwhile, feel free to browse <a href="{{.SiteURL}}" style="color:#3869d4;">{{.SiteName}}</a>.
              </p>
            </td>
          </tr>
          <tr>
            <td style="padding:16px;text-align:center;color:#a8aaaf;font-size:12px;">
              &copy; {{.Year}} {{.SiteName}}. All rights reserved.
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`

const contactAckText = `Hi {{.Name}},

Thanks for reaching out! Your message has been received and I will get
back to you at {{.Email}} as soon as possible.

Your message:
{{.Message}}

Meanwhile, feel free to browse {{.SiteName}}: {{.SiteURL}}

This is an automated message sent from {{.From}}; replies are not monitored.

© {{.Year}} {{.SiteName}}. All rights reserved.
`

var (
	tplContactAckHTML = template.Must(template.New("contact_ack_html").Parse(contactAckHTML))
	tplContactAckText = template.Must(template.New("contact_ack_text").Parse(contactAckText))
)

func renderTemplate(tpl *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// SendContactAck sends the contact acknowledgment to the form submitter.
func (s *Sender) SendContactAck(to string, data ContactAckData) error {
	html, err := renderTemplate(tplContactAckHTML, data)
	if err != nil {
		return err
	}
	text, err := renderTemplate(tplContactAckText, data)
	if err != nil {
		return err
	}
	return s.Send(Message{
		To:      []string{to},
		Subject: contactAckSubject,
		Text:    text,
		HTML:    html,
	})
}
