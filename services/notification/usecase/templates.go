package usecase

import (
	"bytes"
	"fmt"
	"html/template"
)

var (
	purchasePaidTmpl = template.Must(template.New("purchase_paid").Parse(`<p>Thank you for your purchase.</p>
<p><b>{{.ProductTitle}}</b><br>Amount: {{.Amount}} MNT<br>Transaction: {{.TransactionID}}<br>Paid at: {{.PaidAt}}</p>
{{if .SignupURL}}<p><a href="{{.SignupURL}}">Create your account</a> to follow your purchases.</p>{{end}}`))

	affiliateCreatedTmpl = template.Must(template.New("affiliate_created").Parse(`<p>You have been invited to promote products. Share these links:</p>
<ul>{{range .Links}}<li><a href="{{.}}">{{.}}</a></li>{{end}}</ul>`))

	otpTmpl = template.Must(template.New("otp").Parse(`<p>Your verification code is <b>{{.Code}}</b>.</p>
<p>It expires at {{.ExpiresAt}}.</p>`))

	passwordResetTmpl = template.Must(template.New("password_reset").Parse(`<p>We received a request to reset your password.</p>
<p><a href="{{.Link}}">Choose a new password</a></p>
<p>The link expires at {{.ExpiresAt}}. If you did not ask for it, ignore this email.</p>`))
)

func render(tmpl *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}
