package lightpack

import (
	"fmt"
	"net"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Client, bir Lightpack cihazıyla tek bir kalıcı TCP bağlantısı üzerinden
// konuşan protokol istemcisidir.
//
// Client eşzamanlı kullanım için güvenli değildir: her komut bir yazma ve
// tek bir okuma yapar, aynı anda iki komut gönderilirse yanıtlar karışır.
// Birden fazla goroutine aynı istemciyi kullanacaksa çağrıları dışarıda
// sıralamalıdır.
//
// Kullanım:
//
//	client, err := lightpack.Dial("127.0.0.1", lightpack.DefaultPort, []int{1, 2, 3})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	ok, err := client.Lock()
type Client struct {
	// conn, istemcinin tek başına sahip olduğu bağlantıdır.
	conn net.Conn

	// addr, bağlantı adresidir (hata mesajları için).
	addr string

	// leds, mantıksal LED sırasından cihaz kanal numarasına eşlemedir.
	// Oluşturulurken kopyalanır ve bir daha değişmez.
	leds []int

	// lock, cihaz kilidi hakkındaki yerel inançtır.
	lock LockState

	// closed, Close çağrıldıktan sonra true olur.
	closed bool

	// sessionID, bu istemcinin log satırlarındaki kimliğidir.
	sessionID string

	// opts, istemci yapılandırma seçenekleridir.
	opts clientOptions
}

// Dial, host:port adresine TCP bağlantısı kurar ve bir Client döner.
// leds, SetColorForAll'ın kapsadığı LED kanal numaralarıdır; boş olabilir
// ve kopyalanarak saklanır.
//
// Bağlantı kurulamazsa *ConnectionError döner.
//
//	client, err := lightpack.Dial("192.168.1.10", 3636, []int{1, 2, 3, 4},
//	    lightpack.WithDialTimeout(2*time.Second),
//	    lightpack.WithLogger(log.Default()),
//	)
func Dial(host string, port int, leds []int, options ...ClientOption) (*Client, error) {
	opts := defaultClientOptions()
	for _, opt := range options {
		opt(&opts)
	}

	addr := net.JoinHostPort(host, strconv.Itoa(port))
	conn, err := net.DialTimeout("tcp", addr, opts.dialTimeout)
	if err != nil {
		return nil, &ConnectionError{Addr: addr, Err: err}
	}

	// Nagle tamponlaması komutu geciktirmesin; cihaz satırın tamamını
	// almadan yanıt vermez.
	if tcp, ok := conn.(*net.TCPConn); ok {
		if err := tcp.SetNoDelay(true); err != nil {
			conn.Close()
			return nil, &ConnectionError{Addr: addr, Err: fmt.Errorf("TCP_NODELAY ayarlanamadı: %w", err)}
		}
	}

	c := newClient(conn, addr, leds, opts)
	c.logf("Bağlantı kuruldu: %s (LED sayısı: %d)", addr, len(c.leds))
	return c, nil
}

// NewClient, zaten açık bir bağlantıyı Client ile sarar.
// Bağlantının sahipliği Client'a geçer; Close onu kapatır.
func NewClient(conn net.Conn, leds []int, options ...ClientOption) *Client {
	opts := defaultClientOptions()
	for _, opt := range options {
		opt(&opts)
	}

	addr := ""
	if conn != nil && conn.RemoteAddr() != nil {
		addr = conn.RemoteAddr().String()
	}
	return newClient(conn, addr, leds, opts)
}

func newClient(conn net.Conn, addr string, leds []int, opts clientOptions) *Client {
	sessionID := opts.sessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	return &Client{
		conn:      conn,
		addr:      addr,
		leds:      slices.Clone(leds),
		lock:      LockNotHeld,
		sessionID: sessionID,
		opts:      opts,
	}
}

// Close, bağlantıyı kapatır. Kapatma sırasında oluşan hatalar loglanır
// ama döndürülmez; Close her zaman nil döner. Sonraki tüm işlemler
// ErrClosed içeren *ConnectionError ile başarısız olur.
func (c *Client) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	if c.conn == nil {
		return nil
	}
	if err := c.conn.Close(); err != nil {
		c.logf("Bağlantı kapatılırken hata: %v", err)
		return nil
	}
	c.logf("Bağlantı kapatıldı")
	return nil
}

// IsClosed, Close çağrılıp çağrılmadığını döner.
func (c *Client) IsClosed() bool {
	return c.closed
}

// LEDs, LED topolojisinin bir kopyasını döner.
func (c *Client) LEDs() []int {
	return slices.Clone(c.leds)
}

// LockState, cihaz kilidi hakkındaki yerel inancı döner.
func (c *Client) LockState() LockState {
	return c.lock
}

// HasLock, istemcinin kilidi tuttuğuna inanıp inanmadığını döner.
func (c *Client) HasLock() bool {
	return c.lock == LockHeld
}

// SessionID, bu istemcinin oturum kimliğini döner.
func (c *Client) SessionID() string {
	return c.sessionID
}

// RemoteAddr, bağlantının uzak adresini döner.
func (c *Client) RemoteAddr() string {
	return c.addr
}

// Equal, iki istemcinin aynı LED topolojisine sahip olup aynı bağlantıyı
// sarıp sarmadığını döner.
func (c *Client) Equal(other *Client) bool {
	if c == other {
		return true
	}
	if c == nil || other == nil {
		return false
	}
	return c.conn == other.conn && slices.Equal(c.leds, other.leds)
}

// String, istemciyi "Client{conn=..., leds=[...]}" biçiminde yazar.
func (c *Client) String() string {
	return fmt.Sprintf("Client{conn=%s, leds=%v}", c.addr, c.leds)
}

// ─── Veri Gönderme/Alma ─────────────────────────────────────────────────────────

// sendAndReceive, komutu yazar ve tek bir Read ile yanıtı okur.
// Komut satır sonuyla bitmelidir.
//
// Yanıt, ReadBufferSize boyutundaki tampona tek seferde okunur; satır sonu
// beklenmez ve birden fazla okuma birleştirilmez. Daha uzun ya da TCP
// segmentlerine bölünmüş yanıtlar, ilk okumada gelen kadarıyla döner.
func (c *Client) sendAndReceive(command string) (string, error) {
	if err := c.ensureOpen(); err != nil {
		return "", err
	}

	name := strings.TrimSuffix(command, commandTerminator)

	if c.opts.timeout > 0 {
		if err := c.conn.SetDeadline(time.Now().Add(c.opts.timeout)); err != nil {
			return "", &IOError{Op: "deadline", Command: name, Err: err}
		}
	}

	if _, err := c.conn.Write([]byte(command)); err != nil {
		c.logf("Komut gönderilemedi (%s): %v", name, err)
		return "", &IOError{Op: "write", Command: name, Err: err}
	}

	buf := make([]byte, ReadBufferSize)
	n, err := c.conn.Read(buf)
	if err != nil && n == 0 {
		c.logf("Yanıt okunamadı (%s): %v", name, err)
		return "", &IOError{Op: "read", Command: name, Err: err}
	}

	response := string(buf[:n])
	c.logf("%s -> %q", name, response)
	return response, nil
}

// ─── Dahili Yardımcılar ─────────────────────────────────────────────────────────

// logf, yapılandırılmış logger varsa mesaj yazar.
func (c *Client) logf(format string, v ...interface{}) {
	if c.opts.logger != nil {
		c.opts.logger.Printf("[lightpack %s] "+format, append([]interface{}{c.sessionID}, v...)...)
	}
}

// ensureOpen, bağlantının kullanılabilir olduğunu kontrol eder.
func (c *Client) ensureOpen() error {
	if c.closed || c.conn == nil {
		return &ConnectionError{Addr: c.addr, Err: ErrClosed}
	}
	return nil
}
