package lightpack

import (
	"bufio"
	"net"
	"strconv"
	"sync"
	"testing"
)

// mockDevice, testler için Lightpack API'sini taklit eden bir TCP sunucusudur.
// Her satırı handler'a verir ve dönen metni olduğu gibi yazar. Handler boş
// string dönerse bağlantı kapatılır.
type mockDevice struct {
	listener net.Listener
	handler  func(cmd string) string

	mu       sync.Mutex
	conns    []net.Conn
	commands []string

	wg sync.WaitGroup
}

func startMockDevice(t *testing.T, handler func(cmd string) string) *mockDevice {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("mock cihaz dinlemeye başlayamadı: %v", err)
	}

	if handler == nil {
		handler = defaultDeviceHandler
	}

	md := &mockDevice{
		listener: listener,
		handler:  handler,
	}

	md.wg.Add(1)
	go md.acceptLoop()

	t.Cleanup(md.stop)
	return md
}

func (md *mockDevice) acceptLoop() {
	defer md.wg.Done()

	for {
		conn, err := md.listener.Accept()
		if err != nil {
			return
		}

		md.mu.Lock()
		md.conns = append(md.conns, conn)
		md.mu.Unlock()

		md.wg.Add(1)
		go md.serve(conn)
	}
}

func (md *mockDevice) serve(conn net.Conn) {
	defer md.wg.Done()
	defer conn.Close()

	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()

		md.mu.Lock()
		md.commands = append(md.commands, line+"\n")
		md.mu.Unlock()

		resp := md.handler(line)
		if resp == "" {
			return
		}
		if _, err := conn.Write([]byte(resp)); err != nil {
			return
		}
	}
}

func (md *mockDevice) stop() {
	md.listener.Close()

	md.mu.Lock()
	for _, conn := range md.conns {
		conn.Close()
	}
	md.conns = nil
	md.mu.Unlock()

	md.wg.Wait()
}

// host ve port, Dial'a verilecek adres parçalarıdır.
func (md *mockDevice) host() string {
	return md.listener.Addr().(*net.TCPAddr).IP.String()
}

func (md *mockDevice) port() int {
	return md.listener.Addr().(*net.TCPAddr).Port
}

// received, cihazın aldığı komut satırlarını (satır sonu dahil) döner.
func (md *mockDevice) received() []string {
	md.mu.Lock()
	defer md.mu.Unlock()
	out := make([]string, len(md.commands))
	copy(out, md.commands)
	return out
}

// lastCommand, alınan son komut satırını döner.
func (md *mockDevice) lastCommand() string {
	cmds := md.received()
	if len(cmds) == 0 {
		return ""
	}
	return cmds[len(cmds)-1]
}

func defaultDeviceHandler(cmd string) string {
	switch cmd {
	case "getprofiles":
		return "getprofiles:Lightpack;Film;Oyun;\r\n"
	case "getprofile":
		return "getprofile:Film\r\n"
	case "getstatus":
		return "status:on\r\n"
	case "getcountleds":
		return "countleds:" + strconv.Itoa(10) + "\r\n"
	case "getstatusapi":
		return "statusapi:idle\r\n"
	case "lock":
		return "lock:success\r\n"
	case "unlock":
		return "unlock:success\r\n"
	default:
		return "ok\r\n"
	}
}

// dialMock, mock cihaza bağlanan bir istemci döner ve testin sonunda kapatır.
func dialMock(t *testing.T, md *mockDevice, leds []int, options ...ClientOption) *Client {
	t.Helper()

	client, err := Dial(md.host(), md.port(), leds, options...)
	if err != nil {
		t.Fatalf("mock cihaza bağlanılamadı: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}
