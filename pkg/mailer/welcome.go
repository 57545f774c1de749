package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

const welcomeHTML = `<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Welcome to Socialite, {{.Username}}!</h2>
  <p>Your account was created with the email <b>{{.Email}}</b>.</p>
  <p>Fill in your bio and add a profile picture so people can find you.</p>
  <p>— The Socialite team</p>
</body>
</html>`

var welcomeTpl = template.Must(template.New("welcome").Parse(welcomeHTML))

// RenderWelcome renders the post-registration welcome email.
// Returns subject, plain text and HTML bodies.
func RenderWelcome(data map[string]any) (string, string, string, error) {
	var buf bytes.Buffer
	if err := welcomeTpl.Execute(&buf, data); err != nil {
		return "", "", "", err
	}
	subject := "Welcome to Socialite"
	text := fmt.Sprintf("Welcome to Socialite, %v! Your account was created with the email %v.", data["Username"], data["Email"])
	return subject, text, buf.String(), nil
}
