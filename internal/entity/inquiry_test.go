package entity

import "testing"

func TestValidInquiryStatus(t *testing.T) {
	for _, s := range []string{InquiryPending, InquiryAnswered} {
		if !ValidInquiryStatus(s) {
			t.Errorf("ValidInquiryStatus(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "open", "PENDING"} {
		if ValidInquiryStatus(s) {
			t.Errorf("ValidInquiryStatus(%q) = true, want false", s)
		}
	}
}

func TestValidNotificationType(t *testing.T) {
	for _, s := range []string{NotificationShift, NotificationLeave, NotificationInquiry, NotificationAnnouncement} {
		if !ValidNotificationType(s) {
			t.Errorf("ValidNotificationType(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "payroll", "Shift"} {
		if ValidNotificationType(s) {
			t.Errorf("ValidNotificationType(%q) = true, want false", s)
		}
	}
}
