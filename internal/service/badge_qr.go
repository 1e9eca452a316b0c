package service

import (
	"fmt"
	"os"
	"path/filepath"

	qrcode "github.com/skip2/go-qrcode"
)

// EmployeeBadgeQR writes a QR code encoding the employee's id and email, the
// image the badge screen shows for kiosk clock-in. Returns the file path.
func EmployeeBadgeQR(userID int, email string) (string, error) {
	dir := filepath.Join(baseDir, "badge")
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", err
	}

	path := filepath.Join(dir, fmt.Sprintf("employee-%d.png", userID))
	content := fmt.Sprintf("shiftwise:%d:%s", userID, email)

	if err := qrcode.WriteFile(content, qrcode.Medium, 256, path); err != nil {
		return "", fmt.Errorf("error writing qr code: %w", err)
	}

	return path, nil
}
