package mail

import (
	"fmt"

	"github.com/lighty7/Finances-backend/internal/models"
)

// Welcome greets a freshly registered user and carries the email
// verification link, since verification is required before first login.
func Welcome(userName, verifyURL string) Message {
	return Message{
		Subject: "Welcome to Budget Tracker!",
		HTML: fmt.Sprintf(`<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto">
  <h2>Hello %s!</h2>
  <p>Thank you for registering with Budget Tracker. Please verify your email address to complete your registration.</p>
  <p><a href="%s" style="display:inline-block;padding:12px 24px;background:#4CAF50;color:white;text-decoration:none;border-radius:5px">Verify Email</a></p>
  <p>The link expires in 24 hours. If you did not create this account you can ignore this email.</p>
  <p>Best regards,<br>The Budget Tracker Team</p>
</div>`, userName, verifyURL),
		Text: fmt.Sprintf("Hello %s!\n\nThank you for registering with Budget Tracker. "+
			"Please verify your email address to complete your registration:\n\n%s\n\n"+
			"The link expires in 24 hours.", userName, verifyURL),
	}
}

// VerificationReminder is sent when the user asks for the verification
// email again.
func VerificationReminder(userName, verifyURL string) Message {
	return Message{
		Subject: "Verify your Budget Tracker email",
		HTML: fmt.Sprintf(`<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto">
  <h2>Hello %s!</h2>
  <p>Here is your new verification link:</p>
  <p><a href="%s" style="display:inline-block;padding:12px 24px;background:#4CAF50;color:white;text-decoration:none;border-radius:5px">Verify Email</a></p>
  <p>The link expires in 24 hours.</p>
</div>`, userName, verifyURL),
		Text: fmt.Sprintf("Hello %s!\n\nHere is your new verification link:\n\n%s\n\n"+
			"The link expires in 24 hours.", userName, verifyURL),
	}
}

// LoginNotification informs the user about a fresh login on one of their
// devices.
func LoginNotification(userName, ipAddress string, device models.DeviceInfo, when string) Message {
	return Message{
		Subject: "New login to your Budget Tracker account",
		HTML: fmt.Sprintf(`<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto">
  <h2>Hello %s,</h2>
  <p>We noticed a new login to your account:</p>
  <ul>
    <li>Time: %s</li>
    <li>IP address: %s</li>
    <li>Platform: %s</li>
    <li>Browser: %s</li>
  </ul>
  <p>If this was you, no action is needed. Otherwise, log out of all devices and change your password.</p>
</div>`, userName, when, ipAddress, device.Platform, device.Browser),
		Text: fmt.Sprintf("Hello %s,\n\nNew login to your account:\nTime: %s\nIP: %s\nPlatform: %s\nBrowser: %s\n\n"+
			"If this was not you, log out of all devices and change your password.",
			userName, when, ipAddress, device.Platform, device.Browser),
	}
}
