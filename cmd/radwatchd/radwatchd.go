/*
The radwatchd command is a daemon for monitoring RADIUS traffic.

radwatchd binds one or more UDP sockets, decodes the RADIUS packets it
receives, and prints each packet's summary line and decoded attributes
to standard output.

Given a shared secret, obscured attribute values such as User-Password
and Tunnel-Password are decrypted.  Requests are tracked per client so
that obscured values in responses are decrypted against the request
authenticator they were computed with.

radwatchd is driven by a configuration file which describes the listen
addresses, the shared secrets and the optional metrics endpoint.  For
more information on the configuration file format please refer to
package config's documentation.

Run with the -help argument for documentation of the command line
arguments.
*/
package main

import (
	"flag"
	"fmt"
	stdlog "log"
	"net"
	"os"
	"os/signal"
	"sync"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/packetflare/go-radius/config"
	"github.com/packetflare/go-radius/radius"
	"golang.org/x/sys/unix"
)

type application struct {
	config  *config.Config
	logger  log.Logger
	dict    *radius.Dictionary
	pending *pendingRequests
	conns   []*net.UDPConn
	sigChan chan os.Signal
	wg      sync.WaitGroup

	// contexts maps a shared secret to the decode context configured
	// with it, so clients sharing a secret share a context.
	contexts   map[string]*radius.Context
	contextsLk sync.Mutex
}

func newApplication(cfg *config.Config, verbose bool) (app *application, err error) {
	app = &application{
		config:   cfg,
		dict:     radius.BuiltinDictionary(),
		pending:  newPendingRequests(int(cfg.PendingMax)),
		sigChan:  make(chan os.Signal, 1),
		contexts: make(map[string]*radius.Context),
	}

	signal.Notify(app.sigChan, unix.SIGINT, unix.SIGTERM)

	logger := log.NewLogfmtLogger(os.Stderr)
	if verbose {
		app.logger = level.NewFilter(logger, level.AllowInfo(), level.AllowDebug())
	} else {
		app.logger = level.NewFilter(logger, level.AllowInfo())
	}

	for _, addr := range cfg.Listen {
		udpAddr, err := net.ResolveUDPAddr("udp", addr)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %v", addr, err)
		}
		conn, err := net.ListenUDP("udp", udpAddr)
		if err != nil {
			return nil, fmt.Errorf("failed to listen on %s: %v", addr, err)
		}
		app.conns = append(app.conns, conn)
	}

	return
}

// contextFor returns the decode context for the given shared secret,
// creating it on first use.
func (app *application) contextFor(secret string) *radius.Context {
	app.contextsLk.Lock()
	defer app.contextsLk.Unlock()

	if ctx, ok := app.contexts[secret]; ok {
		return ctx
	}

	ctx, err := radius.NewContext(app.dict, app.logger)
	if err != nil {
		// NewContext cannot fail with a non-nil dictionary, but don't
		// silently decode against the wrong state if that changes.
		stdlog.Fatalf("failed to create decode context: %v", err)
	}
	ctx.SetSharedSecret(secret)
	ctx.SetEAPHandler(func(payload []byte) {
		eapReassemblies.Inc()
	})
	app.contexts[secret] = ctx
	return ctx
}

func (app *application) handlePacket(b []byte, src *net.UDPAddr) {
	clientIP := src.IP.String()
	ctx := app.contextFor(app.config.SecretFor(clientIP))

	// The code and identifier are needed up front to correlate
	// responses with the request they answer.
	if len(b) < 2 {
		decodeErrors.WithLabelValues("malformed_header").Inc()
		level.Info(app.logger).Log(
			"message", "dropping runt datagram",
			"client", clientIP,
			"bytes", len(b))
		return
	}
	code := radius.PacketCode(b[0])
	id := b[1]

	var pkt *radius.Packet
	var err error
	if auth, ok := app.correlate(code, clientIP, id); ok {
		pkt, err = ctx.DecodePacketWithAuth(b, auth[:])
	} else {
		pkt, err = ctx.DecodePacket(b)
	}
	if err != nil {
		decodeErrors.WithLabelValues(decodeErrorReason(err)).Inc()
		level.Info(app.logger).Log(
			"message", "decode failed",
			"client", clientIP,
			"error", err)
	}
	if pkt == nil {
		return
	}

	if code.IsRequest() {
		app.pending.store(clientIP, id, pkt.Authenticator)
	}

	packetsDecoded.WithLabelValues(pkt.Code.String()).Inc()
	app.printPacket(pkt, src)
}

// correlate looks up the tracked request authenticator for a response
// packet.  Requests are never correlated: they are decoded against
// their own authenticator.
func (app *application) correlate(code radius.PacketCode, client string, id uint8) ([16]byte, bool) {
	if code.IsRequest() {
		return [16]byte{}, false
	}
	return app.pending.take(client, id)
}

func (app *application) printPacket(pkt *radius.Packet, src *net.UDPAddr) {
	fmt.Printf("%s %s\n", src, pkt.Summary())
	for _, attr := range pkt.Attributes {
		fmt.Printf("    %s\n", attr)
		if attr.Note != "" {
			fmt.Printf("        %s\n", attr.Note)
		}
	}
	if pkt.EAPMessage != nil {
		fmt.Printf("    EAP-Message: %d bytes reassembled\n", len(pkt.EAPMessage))
	}
}

func (app *application) receive(conn *net.UDPConn) {
	defer app.wg.Done()

	b := make([]byte, radius.MaxPacketSize)
	for {
		n, src, err := conn.ReadFromUDP(b)
		if err != nil {
			// Closing the socket unblocks the read during shutdown.
			level.Debug(app.logger).Log(
				"message", "socket read failed",
				"error", err)
			return
		}
		app.handlePacket(b[:n], src)
	}
}

func (app *application) run() {
	for _, conn := range app.conns {
		level.Info(app.logger).Log(
			"message", "listening",
			"address", conn.LocalAddr())
		app.wg.Add(1)
		go app.receive(conn)
	}

	<-app.sigChan

	for _, conn := range app.conns {
		conn.Close()
	}
	app.wg.Wait()
}

func main() {
	cfgPathPtr := flag.String("config", "/etc/radwatchd/radwatchd.toml", "specify configuration file path")
	verbosePtr := flag.Bool("verbose", false, "toggle verbose log output")
	flag.Parse()

	cfg, err := config.LoadFile(*cfgPathPtr)
	if err != nil {
		stdlog.Fatalf("failed to load configuration: %v", err)
	}

	app, err := newApplication(cfg, *verbosePtr)
	if err != nil {
		stdlog.Fatalf("failed to initialise: %v", err)
	}

	// The CoSine VP/VC attribute carries a value syntax the dictionary
	// kinds can't express, so it gets a custom decoder.
	ctx := app.contextFor(cfg.Secret)
	ctx.RegisterAVPDecoder(radius.VendorCosine, 5, radius.CosineVPVC)

	if cfg.MetricsAddress != "" {
		go func() {
			if err := serveMetrics(cfg.MetricsAddress); err != nil {
				stdlog.Fatalf("metrics endpoint failed: %v", err)
			}
		}()
	}

	app.run()
}
