package uploads

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// baseDir โฟลเดอร์เก็บไฟล์ (override ด้วย UPLOAD_DIR)
func baseDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "uploads"
}

// SaveUpload เก็บไฟล์ไว้ใต้ uploads/YYYY/MM/DD/<uuid><ext>
// คืน reference สำหรับใช้เป็นค่า value ของ element ชนิด file
func SaveUpload(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	now := time.Now()
	dir := filepath.Join(baseDir(), now.Format("2006"), now.Format("01"), now.Format("02"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := uuid.NewString() + filepath.Ext(file.Filename)
	path := filepath.Join(dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return filepath.ToSlash(path), nil
}

// Open เปิดไฟล์จาก reference ที่ SaveUpload คืนมา
func Open(ref string) (*os.File, error) {
	path := filepath.Clean(filepath.FromSlash(ref))
	if !filepath.IsLocal(path) {
		return nil, fmt.Errorf("invalid file reference: %s", ref)
	}
	return os.Open(path)
}
