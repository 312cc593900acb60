// Package lightpack provides a Go client for the text-based API of the
// Lightpack / Prismatik ambient-lighting controller.
//
// # Overview
//
// The device listens on a TCP port (default: 3636) and speaks a simple
// line-oriented protocol. Every command is one ASCII line terminated by a
// newline, and the device answers each command with one short text reply.
//
// # Protocol Architecture
//
//   - Commands: "name\n" or "name:parameters\n"
//   - Replies: "key:value\r\n" or "key:value;value;...;\r\n"
//   - One reply per command, read with a single bounded read (8192 bytes)
//   - Colour and setting commands require the API lock ("lock" / "unlock")
//
// # Quick Start
//
//	client, err := lightpack.Dial("127.0.0.1", lightpack.DefaultPort, []int{1, 2, 3, 4})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	ok, err := client.Lock()
//	if err != nil || !ok {
//	    log.Fatal("lock not acquired")
//	}
//	defer client.Unlock()
//
//	resp, err := client.SetColorForAll(255, 0, 10)
//
// # Supported Commands
//
//   - Queries: profiles, active profile, status, LED count, API status
//   - Colours: one LED, or every LED of the topology in one command
//   - Settings: gamma, smoothness, brightness, profile
//   - Power: on / off
//   - API lock acquire and release
//
// # Errors
//
// Failures are reported as *ConnectionError, *IOError,
// *MalformedResponseError or *FormatError and can be matched with
// errors.As. A refused lock is not an error; Lock and Unlock return false.
//
// # Thread Safety
//
// A Client is not safe for concurrent use. Each command is a write followed
// by a single read on the shared connection, so callers sharing a Client
// between goroutines must serialise the calls themselves.
package lightpack
