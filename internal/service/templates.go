package service

import "fmt"

const (
	SubjectApproved = "Admin Access Request Approved"
	SubjectRejected = "Admin Access Request - Status Update"
)

func approvalSMS(name, systemName, code string) string {
	return fmt.Sprintf("Hello %s, Your %s Admin Access Code is: %s. Keep it confidential. Valid until you use it for registration.",
		name, systemName, code)
}

func approvalEmail(name, phone, systemName string) string {
	return fmt.Sprintf("Dear %s,\n\n"+
		"Your request for admin access to %s has been approved.\n\n"+
		"Your admin access code has been sent by SMS to %s. Use it to complete your admin registration.\n\n"+
		"Best regards,\nThe %s Team", name, systemName, phone, systemName)
}

func rejectionEmail(name, reason, systemName string) string {
	return fmt.Sprintf("Dear %s,\n\n"+
		"Thank you for your interest in admin access to %s. After review, your request could not be approved.\n\n"+
		"Reason: %s\n\n"+
		"If you believe this was a mistake, you may submit a new request with updated details.\n\n"+
		"Best regards,\nThe %s Team", name, systemName, reason, systemName)
}
