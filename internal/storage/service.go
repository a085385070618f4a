package storage

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	BucketPapers        = "papers"
	BucketPaymentProofs = "payment-proofs"
	BucketCertificates  = "certificates"
)

type bucketPolicy struct {
	maxSize int64
	mimes   map[string]bool
	public  bool
}

// Manuscripts and proofs are capped at 10MB; manuscripts are PDF-only.
var bucketPolicies = map[string]bucketPolicy{
	BucketPapers: {
		maxSize: 10 << 20,
		mimes:   map[string]bool{"application/pdf": true},
	},
	BucketPaymentProofs: {
		maxSize: 10 << 20,
		mimes: map[string]bool{
			"application/pdf": true,
			"image/jpeg":      true,
			"image/png":       true,
			"image/webp":      true,
		},
	},
	BucketCertificates: {
		maxSize: 20 << 20,
		mimes:   map[string]bool{"application/pdf": true},
		public:  true,
	},
}

// Service stores bucket objects on local disk and issues HMAC-signed
// time-limited download URLs for the private buckets.
type Service struct {
	baseDir    string
	baseURL    string
	signingKey []byte
	defaultTTL time.Duration
}

func NewService(baseDir, baseURL, signingKey string, defaultTTL time.Duration) *Service {
	if baseDir == "" {
		baseDir = "./uploads"
	}
	return &Service{
		baseDir:    baseDir,
		baseURL:    strings.TrimRight(baseURL, "/"),
		signingKey: []byte(signingKey),
		defaultTTL: defaultTTL,
	}
}

// Save validates and writes an uploaded file into the bucket, returning
// the object path to persist on the owning row.
func (s *Service) Save(bucket string, fileHeader *multipart.FileHeader) (string, error) {
	policy, ok := bucketPolicies[bucket]
	if !ok {
		return "", ErrUnknownBucket
	}
	if fileHeader.Size == 0 {
		return "", ErrEmptyFile
	}
	if fileHeader.Size > policy.maxSize {
		return "", ErrFileTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	// Detect MIME type from first 512 bytes
	buf := make([]byte, 512)
	n, _ := file.Read(buf)
	mimeType := strings.Split(http.DetectContentType(buf[:n]), ";")[0]
	if !policy.mimes[mimeType] {
		return "", ErrInvalidMimeType
	}

	if seeker, ok := file.(io.Seeker); ok {
		_, _ = seeker.Seek(0, io.SeekStart)
	}

	now := time.Now()
	relDir := fmt.Sprintf("%d/%02d", now.Year(), now.Month())
	absDir := filepath.Join(s.baseDir, bucket, relDir)
	if err := os.MkdirAll(absDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create bucket directory: %w", err)
	}

	ext := filepath.Ext(fileHeader.Filename)
	if ext == "" && mimeType == "application/pdf" {
		ext = ".pdf"
	}
	filename := fmt.Sprintf("%s_%s%s", uuid.NewString(), sanitizeName(fileHeader.Filename), ext)

	absPath := filepath.Join(absDir, filename)
	dst, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		_ = os.Remove(absPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return strings.ReplaceAll(filepath.Join(relDir, filename), "\\", "/"), nil
}

// SignedURL produces a time-limited download URL for an object in a
// private bucket. Mirrors the createSignedUrl contract of hosted object
// stores.
func (s *Service) SignedURL(bucket, objectPath string) (string, error) {
	if _, ok := bucketPolicies[bucket]; !ok {
		return "", ErrUnknownBucket
	}
	exp := time.Now().Add(s.defaultTTL).Unix()
	sig := s.sign(bucket, objectPath, exp)
	return fmt.Sprintf("%s/api/v1/files/%s/%s?exp=%d&sig=%s", s.baseURL, bucket, objectPath, exp, sig), nil
}

// PublicURL returns a stable URL for objects in public buckets.
func (s *Service) PublicURL(bucket, objectPath string) (string, error) {
	policy, ok := bucketPolicies[bucket]
	if !ok {
		return "", ErrUnknownBucket
	}
	if !policy.public {
		return s.SignedURL(bucket, objectPath)
	}
	return fmt.Sprintf("%s/api/v1/files/%s/%s", s.baseURL, bucket, objectPath), nil
}

// Authorize validates a download request. Public buckets always pass;
// private buckets need an unexpired matching signature.
func (s *Service) Authorize(bucket, objectPath, expStr, sig string) error {
	policy, ok := bucketPolicies[bucket]
	if !ok {
		return ErrUnknownBucket
	}
	if policy.public {
		return nil
	}

	exp, err := strconv.ParseInt(expStr, 10, 64)
	if err != nil || time.Now().Unix() > exp {
		return ErrBadSignature
	}
	expected := s.sign(bucket, objectPath, exp)
	if !hmac.Equal([]byte(expected), []byte(sig)) {
		return ErrBadSignature
	}
	return nil
}

// AbsPath resolves an object path under the bucket, refusing traversal
// outside the base directory.
func (s *Service) AbsPath(bucket, objectPath string) (string, error) {
	if _, ok := bucketPolicies[bucket]; !ok {
		return "", ErrUnknownBucket
	}
	abs := filepath.Join(s.baseDir, bucket, filepath.Clean("/"+objectPath))
	base := filepath.Join(s.baseDir, bucket)
	if !strings.HasPrefix(abs, base) {
		return "", ErrBadSignature
	}
	return abs, nil
}

func (s *Service) sign(bucket, objectPath string, exp int64) string {
	mac := hmac.New(sha256.New, s.signingKey)
	fmt.Fprintf(mac, "%s/%s:%d", bucket, objectPath, exp)
	return hex.EncodeToString(mac.Sum(nil))
}

func sanitizeName(name string) string {
	name = filepath.Base(name)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' {
			return r
		}
		return '_'
	}, name)
	if len(name) > 40 {
		name = name[:40]
	}
	if name == "" {
		return "file"
	}
	return name
}
