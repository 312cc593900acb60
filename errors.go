package lightpack

import (
	"errors"
	"fmt"
)

// ErrClosed, Close çağrıldıktan sonra yapılan işlemlerde ConnectionError
// içinde döner.
var ErrClosed = errors.New("bağlantı kapalı")

// ConnectionError, bağlantının kurulamadığını ya da kapatılmış bir istemcinin
// kullanılmaya çalışıldığını belirtir.
type ConnectionError struct {
	Addr string // host:port
	Err  error
}

func (e *ConnectionError) Error() string {
	if e.Addr == "" {
		return fmt.Sprintf("lightpack bağlantı hatası: %v", e.Err)
	}
	return fmt.Sprintf("lightpack bağlantı hatası (%s): %v", e.Addr, e.Err)
}

// Unwrap, errors.Is/As desteği için alttaki hatayı döner.
func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// IOError, kurulu bir bağlantıda yazma veya okuma sırasında oluşan
// taşıma katmanı hatasıdır (reset, broken pipe, EOF, zaman aşımı).
type IOError struct {
	Op      string // "write" veya "read"
	Command string // Hataya yol açan komut (satır sonu olmadan)
	Err     error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("lightpack %s hatası (%s): %v", e.Op, e.Command, e.Err)
}

// Unwrap, errors.Is/As desteği için alttaki hatayı döner.
func (e *IOError) Unwrap() error {
	return e.Err
}

// MalformedResponseError, cihaz yanıtının beklenen konumsal biçime
// ("anahtar:değer" veya "anahtar:değer;değer;...;") uymadığını belirtir.
type MalformedResponseError struct {
	Command  string
	Response string
	Field    int // Erişilmeye çalışılan alan indeksi
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("lightpack %s yanıtı çözümlenemedi: %d. alan yok: %q", e.Command, e.Field, e.Response)
}

// FormatError, sayı olması beklenen bir yanıt alanının sayıya
// çevrilemediğini belirtir.
type FormatError struct {
	Command string
	Value   string
	Err     error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("lightpack %s yanıtında geçersiz sayı %q: %v", e.Command, e.Value, e.Err)
}

// Unwrap, errors.Is/As desteği için alttaki hatayı döner.
func (e *FormatError) Unwrap() error {
	return e.Err
}
