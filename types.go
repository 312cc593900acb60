package lightpack

import (
	"fmt"
	"time"
)

// ─── Protokol Sabitleri ─────────────────────────────────────────────────────────

const (
	// DefaultPort, Lightpack API sunucusunun varsayılan TCP dinleme portudur.
	DefaultPort = 3636

	// DefaultDialTimeout, TCP bağlantısı kurulurken beklenecek varsayılan süredir.
	DefaultDialTimeout = 5 * time.Second

	// ReadBufferSize, tek bir yanıt okumasında kullanılan tamponun boyutudur.
	// Yanıt tek bir Read çağrısıyla okunur; bu boyuttan uzun yanıtlar kesilir.
	ReadBufferSize = 8192

	// commandTerminator, her komutun sonundaki satır sonu karakteridir.
	// Cihaz, bu karakteri görene kadar komutu işlemez.
	commandTerminator = "\n"

	// fieldSeparator, "anahtar:değer" yanıtlarındaki ayırıcıdır.
	fieldSeparator = ":"

	// listSeparator, "anahtar:değer;değer;...;" yanıtlarındaki liste ayırıcısıdır.
	listSeparator = ";"

	// listTerminator, getprofiles yanıtının sonundaki ";\r\n" işaretidir.
	listTerminator = ";\r\n"
)

// ─── Komutlar ───────────────────────────────────────────────────────────────────

// Cihazın tanıdığı komut adları.
const (
	cmdGetProfiles    = "getprofiles"
	cmdGetProfile     = "getprofile"
	cmdGetStatus      = "getstatus"
	cmdGetCountLEDs   = "getcountleds"
	cmdGetStatusAPI   = "getstatusapi"
	cmdSetColor       = "setcolor"
	cmdSetGamma       = "setgamma"
	cmdSetSmooth      = "setsmooth"
	cmdSetBrightness  = "setbrightness"
	cmdSetProfile     = "setprofile"
	cmdSetStatus      = "setstatus"
	cmdLock           = "lock"
	cmdUnlock         = "unlock"
	statusOn          = "on"
	statusOff         = "off"
	lockSuccessMarker = "lock:success"
	unlockSuccess     = "unlock:success"
	unlockNotLocked   = "unlock:not locked"
)

// ─── Kilit Durumu ───────────────────────────────────────────────────────────────

// LockState, istemcinin cihaz kilidi hakkındaki yerel inancını temsil eder.
// Gerçek durum cihazdadır; başka bir istemci kilidi aldıysa veya bir komut
// başarısız olduysa bu değer cihazla uyuşmayabilir.
type LockState int

const (
	LockUnknown LockState = iota // Henüz bilinmiyor
	LockHeld                     // Kilit bu istemcide
	LockNotHeld                  // Kilit bu istemcide değil
)

// String, LockState'in okunabilir adını döner.
func (s LockState) String() string {
	switch s {
	case LockUnknown:
		return "unknown"
	case LockHeld:
		return "held"
	case LockNotHeld:
		return "not-held"
	default:
		return fmt.Sprintf("LockState(%d)", int(s))
	}
}

// ─── Seçenek Yapıları ───────────────────────────────────────────────────────────

// ClientOption, Client yapılandırma seçeneklerini tanımlar.
// Functional Options pattern kullanılır.
type ClientOption func(*clientOptions)

type clientOptions struct {
	dialTimeout time.Duration
	timeout     time.Duration
	logger      Logger
	sessionID   string
}

func defaultClientOptions() clientOptions {
	return clientOptions{
		dialTimeout: DefaultDialTimeout,
		timeout:     0,
		logger:      nil,
		sessionID:   "",
	}
}

// WithDialTimeout, TCP bağlantısı kurulurken beklenecek süreyi ayarlar.
// Sıfır, işletim sisteminin varsayılanı anlamına gelir.
func WithDialTimeout(d time.Duration) ClientOption {
	return func(o *clientOptions) {
		o.dialTimeout = d
	}
}

// WithTimeout, her komut alışverişi için okuma/yazma zaman aşımını ayarlar.
// Varsayılan olarak zaman aşımı yoktur; işlemler bağlantı cevap verene
// kadar bloklanır.
//
//	client, err := lightpack.Dial("127.0.0.1", lightpack.DefaultPort, leds,
//	    lightpack.WithTimeout(2*time.Second),
//	)
func WithTimeout(d time.Duration) ClientOption {
	return func(o *clientOptions) {
		o.timeout = d
	}
}

// WithLogger, özel bir loglama arayüzü ayarlar.
// Varsayılan olarak loglama devre dışıdır.
func WithLogger(l Logger) ClientOption {
	return func(o *clientOptions) {
		o.logger = l
	}
}

// WithSessionID, log satırlarında kullanılan oturum kimliğini sabitler.
// Verilmezse her istemci için yeni bir UUID üretilir.
func WithSessionID(id string) ClientOption {
	return func(o *clientOptions) {
		o.sessionID = id
	}
}

// ─── Logger Arayüzü ─────────────────────────────────────────────────────────────

// Logger, kütüphanenin loglama arayüzüdür.
// stdlib log paketi veya zap.NewStdLog gibi adaptörlerle uyumludur.
type Logger interface {
	// Printf, formatlanmış bir log mesajı yazar.
	Printf(format string, v ...interface{})
}
