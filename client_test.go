package lightpack

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bufferLogger struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (l *bufferLogger) Printf(format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(&l.buf, format+"\n", v...)
}

func (l *bufferLogger) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf.String()
}

func TestDialInitialState(t *testing.T) {
	md := startMockDevice(t, nil)
	client := dialMock(t, md, []int{3, 1, 2})

	assert.Equal(t, LockNotHeld, client.LockState())
	assert.False(t, client.HasLock())
	assert.False(t, client.IsClosed())
	assert.Equal(t, []int{3, 1, 2}, client.LEDs())
	assert.NotEmpty(t, client.SessionID())
	assert.Contains(t, client.RemoteAddr(), "127.0.0.1")
}

func TestDialRefused(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	listener.Close()

	client, err := Dial("127.0.0.1", port, nil, WithDialTimeout(time.Second))
	assert.Nil(t, client)

	var connErr *ConnectionError
	require.True(t, errors.As(err, &connErr), "got %v", err)
	assert.Equal(t, fmt.Sprintf("127.0.0.1:%d", port), connErr.Addr)
}

func TestTopologyIsCopied(t *testing.T) {
	md := startMockDevice(t, nil)
	leds := []int{0, 1, 2}
	client := dialMock(t, md, leds)

	leds[0] = 99
	_, err := client.SetColorForAll(255, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, "setcolor:0-255,0,10;1-255,0,10;2-255,0,10;\n", md.lastCommand())

	out := client.LEDs()
	out[1] = 42
	assert.Equal(t, []int{0, 1, 2}, client.LEDs())
}

func TestQueries(t *testing.T) {
	md := startMockDevice(t, nil)
	client := dialMock(t, md, nil)

	profiles, err := client.Profiles()
	require.NoError(t, err)
	assert.Equal(t, []string{"Lightpack", "Film", "Oyun"}, profiles)

	profile, err := client.Profile()
	require.NoError(t, err)
	assert.Equal(t, "Film\r\n", profile)

	status, err := client.Status()
	require.NoError(t, err)
	assert.Equal(t, "status:on\r\n", status)

	count, err := client.CountLEDs()
	require.NoError(t, err)
	assert.Equal(t, 10, count)

	api, err := client.APIStatus()
	require.NoError(t, err)
	assert.Equal(t, "idle\r\n", api)

	assert.Equal(t, []string{
		"getprofiles\n",
		"getprofile\n",
		"getstatus\n",
		"getcountleds\n",
		"getstatusapi\n",
	}, md.received())
}

func TestProfilesWithTrailingEmptySegment(t *testing.T) {
	md := startMockDevice(t, func(cmd string) string {
		return "getprofiles:Profile1;Profile2;Profile3;;\r\n"
	})
	client := dialMock(t, md, nil)

	profiles, err := client.Profiles()
	require.NoError(t, err)
	assert.Equal(t, []string{"Profile1", "Profile2", "Profile3"}, profiles)
}

func TestCountLEDsFormatError(t *testing.T) {
	md := startMockDevice(t, func(cmd string) string {
		return "countleds:lots\r\n"
	})
	client := dialMock(t, md, nil)

	_, err := client.CountLEDs()
	var formatErr *FormatError
	assert.True(t, errors.As(err, &formatErr), "got %v", err)
}

func TestMutationsSendExactCommands(t *testing.T) {
	md := startMockDevice(t, func(cmd string) string {
		return "ok\r\n"
	})
	client := dialMock(t, md, []int{7, 8})

	tests := []struct {
		name     string
		call     func() (string, error)
		expected string
	}{
		{"SetColor", func() (string, error) { return client.SetColor(5, 10, 20, 30) }, "setcolor:5-10,20,30;\n"},
		{"SetColorForAll", func() (string, error) { return client.SetColorForAll(1, 2, 3) }, "setcolor:7-1,2,3;8-1,2,3;\n"},
		{"SetGamma", func() (string, error) { return client.SetGamma(2.0) }, "setgamma:2.0\n"},
		{"SetSmoothness", func() (string, error) { return client.SetSmoothness(255) }, "setsmooth:255\n"},
		{"SetBrightness", func() (string, error) { return client.SetBrightness(100) }, "setbrightness:100\n"},
		{"SetBrightness out of range", func() (string, error) { return client.SetBrightness(150) }, "setbrightness:150\n"},
		{"SetProfile", func() (string, error) { return client.SetProfile("Film") }, "setprofile:Film\n"},
		{"TurnOn", client.TurnOn, "setstatus:on\n"},
		{"TurnOff", client.TurnOff, "setstatus:off\n"},
		{"SendRaw", func() (string, error) { return client.SendRaw("getstatus") }, "getstatus\n"},
		{"SendRaw terminated", func() (string, error) { return client.SendRaw("getstatus\n") }, "getstatus\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := tt.call()
			require.NoError(t, err)
			assert.Equal(t, "ok\r\n", resp)
			assert.Equal(t, tt.expected, md.lastCommand())
		})
	}
}

func TestLockLifecycle(t *testing.T) {
	tests := []struct {
		name          string
		lockResp      string
		expectedOK    bool
		expectedState LockState
	}{
		{"success", "lock:success\r\n", true, LockHeld},
		{"busy", "lock:busy\r\n", false, LockNotHeld},
		{"failed", "lock:failed\r\n", false, LockNotHeld},
		{"surrounded", "hi\r\nlock:success\r\n", true, LockHeld},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			md := startMockDevice(t, func(cmd string) string { return tt.lockResp })
			client := dialMock(t, md, nil)

			ok, err := client.Lock()
			require.NoError(t, err)
			assert.Equal(t, tt.expectedOK, ok)
			assert.Equal(t, tt.expectedState, client.LockState())
			assert.Equal(t, "lock\n", md.lastCommand())
		})
	}
}

func TestUnlockLifecycle(t *testing.T) {
	tests := []struct {
		name          string
		unlockResp    string
		expectedOK    bool
		expectedState LockState
	}{
		{"success", "unlock:success\r\n", true, LockNotHeld},
		{"not locked", "unlock:not locked\r\n", true, LockNotHeld},
		{"failed", "unlock:failed\r\n", false, LockHeld},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			md := startMockDevice(t, func(cmd string) string {
				if cmd == "lock" {
					return "lock:success\r\n"
				}
				return tt.unlockResp
			})
			client := dialMock(t, md, nil)

			ok, err := client.Lock()
			require.NoError(t, err)
			require.True(t, ok)

			ok, err = client.Unlock()
			require.NoError(t, err)
			assert.Equal(t, tt.expectedOK, ok)
			assert.Equal(t, tt.expectedState, client.LockState())
		})
	}
}

func TestUnlockWithoutLockFailureMarksHeld(t *testing.T) {
	md := startMockDevice(t, func(cmd string) string { return "unlock:error\r\n" })
	client := dialMock(t, md, nil)

	ok, err := client.Unlock()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, LockHeld, client.LockState())
}

func TestOperationsAfterClose(t *testing.T) {
	md := startMockDevice(t, nil)
	client := dialMock(t, md, []int{1})

	require.NoError(t, client.Close())
	assert.True(t, client.IsClosed())
	assert.NoError(t, client.Close())

	calls := map[string]func() error{
		"Status":         func() error { _, err := client.Status(); return err },
		"Profiles":       func() error { _, err := client.Profiles(); return err },
		"CountLEDs":      func() error { _, err := client.CountLEDs(); return err },
		"SetColorForAll": func() error { _, err := client.SetColorForAll(1, 2, 3); return err },
		"Lock":           func() error { _, err := client.Lock(); return err },
		"Unlock":         func() error { _, err := client.Unlock(); return err },
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			err := call()
			var connErr *ConnectionError
			require.True(t, errors.As(err, &connErr), "got %v", err)
			assert.True(t, errors.Is(err, ErrClosed))
		})
	}

	assert.Equal(t, LockNotHeld, client.LockState())
}

func TestReadErrorIsIOError(t *testing.T) {
	md := startMockDevice(t, func(cmd string) string { return "" })
	client := dialMock(t, md, nil)

	_, err := client.Status()
	var ioErr *IOError
	require.True(t, errors.As(err, &ioErr), "got %v", err)
	assert.Equal(t, "read", ioErr.Op)
	assert.Equal(t, "getstatus", ioErr.Command)
	assert.True(t, errors.Is(err, io.EOF))
}

func TestLockTransportErrorKeepsState(t *testing.T) {
	md := startMockDevice(t, func(cmd string) string { return "" })
	client := dialMock(t, md, nil)

	ok, err := client.Lock()
	assert.False(t, ok)
	assert.Error(t, err)
	assert.Equal(t, LockNotHeld, client.LockState())
}

func TestWriteErrorIsIOError(t *testing.T) {
	local, remote := net.Pipe()
	remote.Close()

	client := NewClient(local, nil)
	defer client.Close()

	_, err := client.TurnOn()
	var ioErr *IOError
	require.True(t, errors.As(err, &ioErr), "got %v", err)
	assert.Equal(t, "write", ioErr.Op)
}

func TestTimeout(t *testing.T) {
	local, remote := net.Pipe()
	defer remote.Close()

	go func() {
		buf := make([]byte, 64)
		remote.Read(buf)
		// Yanıt gönderilmez.
	}()

	client := NewClient(local, nil, WithTimeout(50*time.Millisecond))
	defer client.Close()

	_, err := client.Status()
	var ioErr *IOError
	require.True(t, errors.As(err, &ioErr), "got %v", err)
	var netErr net.Error
	require.True(t, errors.As(err, &netErr))
	assert.True(t, netErr.Timeout())
}

func TestSingleReadTruncatesLargeResponse(t *testing.T) {
	local, remote := net.Pipe()
	defer remote.Close()

	// ":" ayırıcısı okuma tamponunun dışında kalır.
	large := strings.Repeat("x", ReadBufferSize+100) + ":Film\r\n"
	go func() {
		buf := make([]byte, 64)
		if _, err := remote.Read(buf); err != nil {
			return
		}
		remote.Write([]byte(large))
	}()

	client := NewClient(local, nil)
	defer client.Close()

	_, err := client.Profile()
	var malformed *MalformedResponseError
	require.True(t, errors.As(err, &malformed), "got %v", err)
	assert.Len(t, malformed.Response, ReadBufferSize)
}

func TestSingleReadDoesNotReassemble(t *testing.T) {
	local, remote := net.Pipe()
	defer remote.Close()

	go func() {
		buf := make([]byte, 64)
		if _, err := remote.Read(buf); err != nil {
			return
		}
		remote.Write([]byte("status:"))
		remote.Write([]byte("on\r\n"))
	}()

	client := NewClient(local, nil)
	defer client.Close()

	status, err := client.Status()
	require.NoError(t, err)
	assert.Equal(t, "status:", status)
}

func TestEqual(t *testing.T) {
	local, remote := net.Pipe()
	defer remote.Close()
	other, otherRemote := net.Pipe()
	defer otherRemote.Close()

	a := NewClient(local, []int{1, 2, 3})
	b := NewClient(local, []int{1, 2, 3})
	c := NewClient(local, []int{1, 2})
	d := NewClient(other, []int{1, 2, 3})

	assert.True(t, a.Equal(a))
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
	assert.False(t, a.Equal(nil))
}

func TestStringAndLogging(t *testing.T) {
	md := startMockDevice(t, nil)
	logger := &bufferLogger{}
	client := dialMock(t, md, []int{1, 2}, WithLogger(logger), WithSessionID("test-oturum"))

	assert.Equal(t, "test-oturum", client.SessionID())
	assert.Equal(t, fmt.Sprintf("Client{conn=%s, leds=[1 2]}", client.RemoteAddr()), client.String())

	_, err := client.Status()
	require.NoError(t, err)
	assert.Contains(t, logger.String(), "[lightpack test-oturum]")
	assert.Contains(t, logger.String(), "getstatus")
}

func TestLockStateString(t *testing.T) {
	assert.Equal(t, "unknown", LockUnknown.String())
	assert.Equal(t, "held", LockHeld.String())
	assert.Equal(t, "not-held", LockNotHeld.String())
	assert.Equal(t, "LockState(9)", LockState(9).String())
}
