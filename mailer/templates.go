package mailer

import (
	"bytes"
	"html/template"
)

// WelcomeEmailData data email akun semi volunteer baru.
type WelcomeEmailData struct {
	Nama     string
	Email    string
	Password string
}

// BuildWelcomeEmail merakit subject + body HTML untuk akun yang baru dibuat.
func BuildWelcomeEmail(data WelcomeEmailData) (subject, body string) {
	var buf bytes.Buffer
	_ = welcomeTmpl.Execute(&buf, data)
	return "Akses Akun Semi Volunteer", buf.String()
}

var welcomeTmpl = template.Must(template.New("welcome").Parse(`<p>Halo {{.Nama}},</p>
<p>Berikut adalah informasi akun Anda:</p>
<ul>
  <li><strong>Username (Email):</strong> {{.Email}}</li>
  <li><strong>Password:</strong> {{.Password}}</li>
</ul>
<p>Silakan login dan segera ganti password Anda.</p>`))
