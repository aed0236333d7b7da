package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/domain/entities"
)

var otpTemplate = template.Must(template.New("otp").Parse(`
<div style="font-family: sans-serif; max-width: 480px; margin: 0 auto;">
  <h2>CrowdWave</h2>
  <p>{{.Intro}}</p>
  <p style="font-size: 32px; letter-spacing: 8px; font-weight: bold;">{{.Code}}</p>
  <p>This code expires in {{.TTLMinutes}} minutes. If you did not request it, you can ignore this email.</p>
</div>`))

var welcomeTemplate = template.Must(template.New("welcome").Parse(`
<div style="font-family: sans-serif; max-width: 480px; margin: 0 auto;">
  <h2>Welcome to CrowdWave, {{.Name}}!</h2>
  <p>Your account is ready. Post a package or plan a trip to get started.</p>
</div>`))

var deliveryUpdateTemplate = template.Must(template.New("delivery").Parse(`
<div style="font-family: sans-serif; max-width: 480px; margin: 0 auto;">
  <h2>Delivery update</h2>
  <p>Your package <strong>{{.PackageID}}</strong> is now <strong>{{.Status}}</strong>.</p>
  {{if .Message}}<p>{{.Message}}</p>{{end}}
</div>`))

func renderOTPBody(code string, purpose entities.OTPPurpose, ttl time.Duration) (subject, body string, err error) {
	var intro string
	switch purpose {
	case entities.OTPPurposeEmailVerification:
		subject = "Verify your email address"
		intro = "Use this code to verify your email address:"
	case entities.OTPPurposePasswordReset:
		subject = "Reset your password"
		intro = "Use this code to reset your password:"
	case entities.OTPPurposeCRMLogin:
		subject = "Your CRM login code"
		intro = "Use this code to sign in to the CrowdWave CRM:"
	case entities.OTPPurposeDelivery:
		subject = "Your delivery confirmation code"
		intro = "Share this code with the traveler to confirm delivery:"
	default:
		return "", "", fmt.Errorf("unknown otp purpose: %s", purpose)
	}

	var buf bytes.Buffer
	err = otpTemplate.Execute(&buf, map[string]interface{}{
		"Intro":      intro,
		"Code":       code,
		"TTLMinutes": int(ttl.Minutes()),
	})
	return subject, buf.String(), err
}

func renderWelcomeBody(name string) (string, error) {
	var buf bytes.Buffer
	err := welcomeTemplate.Execute(&buf, map[string]interface{}{"Name": name})
	return buf.String(), err
}

func renderDeliveryUpdateBody(packageID, status, message string) (string, error) {
	var buf bytes.Buffer
	err := deliveryUpdateTemplate.Execute(&buf, map[string]interface{}{
		"PackageID": packageID,
		"Status":    status,
		"Message":   message,
	})
	return buf.String(), err
}
