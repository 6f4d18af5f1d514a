package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
	"golang.org/x/exp/slog"
)

const minPhoneLen = 10

var (
	ErrNotFound       = errors.New("no operator profile stored")
	ErrInvalidProfile = errors.New("invalid operator profile")
)

// Profile - контактная карточка самого оператора. Ее JSON и есть содержимое
// QR-кода, которое понимают другие станции.
type Profile struct {
	FirstName   string `json:"firstName" doc:"First name" minLength:"1"`
	LastName    string `json:"lastName" doc:"Last name" minLength:"1"`
	Street      string `json:"street" doc:"Street and number" minLength:"1"`
	PostalCode  string `json:"postalCode" doc:"Postal code" minLength:"1"`
	City        string `json:"city" doc:"City" minLength:"1"`
	PhoneNumber string `json:"phoneNumber" doc:"Phone number" minLength:"10"`
	Email       string `json:"email,omitempty" doc:"Email address" required:"false"`
	DateOfBirth string `json:"dateOfBirth,omitempty" doc:"Date of birth" required:"false"`
}

// Validate проверяет обязательные поля и длину номера телефона.
func (p Profile) Validate() error {
	required := []struct{ name, value string }{
		{"firstName", p.FirstName},
		{"lastName", p.LastName},
		{"street", p.Street},
		{"postalCode", p.PostalCode},
		{"city", p.City},
		{"phoneNumber", p.PhoneNumber},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidProfile, f.name)
		}
	}
	if len([]rune(strings.TrimSpace(p.PhoneNumber))) < minPhoneLen {
		return fmt.Errorf("%w: phoneNumber needs at least %d characters", ErrInvalidProfile, minPhoneLen)
	}
	return nil
}

type Repository interface {
	Get(ctx context.Context) (string, bool, error)
	Set(ctx context.Context, raw string) error
	Remove(ctx context.Context) error
}

type Servicer interface {
	Save(ctx context.Context, p Profile) error
	Get(ctx context.Context) (Profile, error)
	Delete(ctx context.Context) error
	Payload(ctx context.Context) (string, error)
	QRCode(ctx context.Context, size int) ([]byte, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "profile_service"),
	}
}

func (s *Service) Save(ctx context.Context, p Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	b, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	if err := s.repo.Set(ctx, string(b)); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	s.log.Info("operator profile saved")
	return nil
}

func (s *Service) Get(ctx context.Context) (Profile, error) {
	raw, err := s.Payload(ctx)
	if err != nil {
		return Profile{}, err
	}
	var p Profile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return Profile{}, fmt.Errorf("decode profile: %w", err)
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context) error {
	if err := s.repo.Remove(ctx); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	s.log.Info("operator profile deleted")
	return nil
}

// Payload возвращает сохраненный JSON без изменений.
func (s *Service) Payload(ctx context.Context) (string, error) {
	raw, ok, err := s.repo.Get(ctx)
	if err != nil {
		return "", fmt.Errorf("load profile: %w", err)
	}
	if !ok {
		return "", ErrNotFound
	}
	return raw, nil
}

// QRCode рисует сохраненный профиль как PNG размером size x size.
func (s *Service) QRCode(ctx context.Context, size int) ([]byte, error) {
	raw, err := s.Payload(ctx)
	if err != nil {
		return nil, err
	}
	return QRPNG(raw, size)
}

// QRPNG кодирует content в PNG с QR-кодом.
func QRPNG(content string, size int) ([]byte, error) {
	png, err := qrcode.Encode(content, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return png, nil
}

// QRText рисует QR-код блочными символами для терминала.
func QRText(content string) (string, error) {
	q, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("encode qr: %w", err)
	}
	return q.ToSmallString(false), nil
}
