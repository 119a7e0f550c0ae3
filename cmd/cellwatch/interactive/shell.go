// Package interactive provides the interactive command-line interface
// for cellwatch. It drives the simulated platform and shows every status
// the observer publishes.
package interactive

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/chzyer/readline"

	"github.com/cellwatch/cellwatch-go/pkg/lifecycle"
	"github.com/cellwatch/cellwatch-go/pkg/observer"
	"github.com/cellwatch/cellwatch-go/pkg/simulator"
)

// Default network ids used by the caps and wifi commands.
const (
	cellularNetwork = "rmnet0"
	wifiNetwork     = "wlan0"
)

// Shell handles interactive mode for cellwatch.
type Shell struct {
	platform *simulator.Platform
	observer *observer.Observer
	host     *lifecycle.Host
	rl       *readline.Instance

	mu  sync.Mutex
	out io.Writer
}

// New creates a new interactive shell and the lifecycle host it drives.
// The shell renders every status the host shows.
func New(platform *simulator.Platform, obs *observer.Observer, logger *slog.Logger) (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "cellwatch> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	s := newShell(platform, obs, logger, rl.Stdout())
	s.rl = rl
	return s, nil
}

func newShell(platform *simulator.Platform, obs *observer.Observer, logger *slog.Logger, out io.Writer) *Shell {
	s := &Shell{
		platform: platform,
		observer: obs,
		out:      out,
	}
	s.host = lifecycle.New(obs, s, logger)
	return s
}

// Host returns the lifecycle host driven by the shell.
func (s *Shell) Host() *lifecycle.Host {
	return s.host
}

// Stdout returns a writer that properly coordinates with the readline input.
// Use this for log output to avoid interfering with the command prompt.
func (s *Shell) Stdout() io.Writer {
	return s.rl.Stdout()
}

// Render implements lifecycle.Renderer.
func (s *Shell) Render(status observer.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(s.out, "[STATUS]", StatusLine(status))
}

// Run starts the interactive command loop.
func (s *Shell) Run(ctx context.Context, cancel context.CancelFunc) {
	defer s.rl.Close()

	s.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := s.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			s.println("Exiting...")
			cancel()
			return
		}

		if !s.Execute(line) {
			cancel()
			return
		}
	}
}

// Execute runs one command line. It returns false when the shell should exit.
func (s *Shell) Execute(line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return true
	}

	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		s.printHelp()

	case "status", "s":
		s.cmdStatus()

	case "resume":
		s.report(s.host.Resume())

	case "pause":
		s.report(s.host.Pause())

	case "grant":
		s.platform.Grant(observer.PermissionReadPhoneState)
		s.println("Permission granted (takes effect on resume)")

	case "revoke":
		s.platform.Revoke(observer.PermissionReadPhoneState)
		s.println("Permission revoked (takes effect on resume)")

	case "sim":
		s.cmdSIM(args)

	case "override", "o":
		s.cmdOverride(args)

	case "caps", "c":
		s.cmdCaps(args)

	case "wifi", "w":
		s.cmdWiFi(args)

	case "quit", "exit", "q":
		s.println("Exiting...")
		return false

	default:
		s.printf("Unknown command: %s (type 'help' for commands)\n", cmd)
	}

	s.platform.Sync()
	return true
}

func (s *Shell) printHelp() {
	s.println(`Commands:
  help                          Show this help
  status                        Show the current status
  resume                        Bring the host to the foreground (start observing)
  pause                         Send the host to the background (stop observing)
  grant | revoke                Grant or revoke READ_PHONE_STATE
  sim <id|invalid>              Switch the data subscription
  override <sim> <type|value>   Set the override of a SIM (e.g. NR_NSA, LTE-CA, 3)
  caps <down> <up> [nm] [tnm]   Cellular capabilities update
  wifi <down> <up>              Wi-Fi capabilities update (ignored by the observer)
  quit                          Exit`)
}

func (s *Shell) cmdStatus() {
	s.platform.Sync()
	status := s.observer.Status()

	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.out, "Host: %s  Observer: %s  Bound: %s\n",
		s.host.State(), s.observer.State(), s.observer.BoundSubscription())
	RenderStatus(s.out, status)
}

func (s *Shell) cmdSIM(args []string) {
	if len(args) != 1 {
		s.println("Usage: sim <id|invalid>")
		return
	}
	id := observer.InvalidSubscriptionID
	if !strings.EqualFold(args[0], "invalid") {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			s.printf("Invalid subscription id: %s\n", args[0])
			return
		}
		id = observer.SubscriptionID(n)
	}
	s.platform.SetDefaultData(id)
}

func (s *Shell) cmdOverride(args []string) {
	if len(args) != 2 {
		s.println("Usage: override <sim> <type|value>")
		return
	}
	sim, err := strconv.Atoi(args[0])
	if err != nil {
		s.printf("Invalid SIM id: %s\n", args[0])
		return
	}
	value, err := observer.ParsePlatformOverride(args[1])
	if err != nil {
		s.printf("Error: %v\n", err)
		return
	}
	s.platform.SetOverride(observer.SubscriptionID(sim), value)
}

func (s *Shell) cmdCaps(args []string) {
	caps, ok := s.parseBandwidth("caps <down> <up> [nm] [tnm]", args)
	if !ok {
		return
	}
	caps.Transports = []observer.Transport{observer.TransportCellular}
	for _, flag := range args[2:] {
		switch strings.ToLower(flag) {
		case "nm":
			caps.Capabilities = append(caps.Capabilities, observer.CapabilityNotMetered)
		case "tnm":
			caps.Capabilities = append(caps.Capabilities, observer.CapabilityTemporarilyNotMetered)
		default:
			s.printf("Unknown flag: %s\n", flag)
			return
		}
	}
	s.platform.UpdateNetwork(cellularNetwork, caps)
}

func (s *Shell) cmdWiFi(args []string) {
	caps, ok := s.parseBandwidth("wifi <down> <up>", args)
	if !ok {
		return
	}
	caps.Transports = []observer.Transport{observer.TransportWiFi}
	caps.Capabilities = append(caps.Capabilities, observer.CapabilityNotMetered)
	s.platform.UpdateNetwork(wifiNetwork, caps)
}

func (s *Shell) parseBandwidth(usage string, args []string) (observer.NetworkCapabilities, bool) {
	caps := observer.NetworkCapabilities{
		Capabilities: []observer.Capability{observer.CapabilityInternet, observer.CapabilityValidated},
	}
	if len(args) < 2 {
		s.println("Usage: " + usage)
		return caps, false
	}
	down, err1 := strconv.Atoi(args[0])
	up, err2 := strconv.Atoi(args[1])
	if err1 != nil || err2 != nil {
		s.println("Bandwidth must be an integer (kbps)")
		return caps, false
	}
	caps.LinkDownstreamKbps = down
	caps.LinkUpstreamKbps = up
	return caps, true
}

func (s *Shell) report(err error) {
	if err != nil {
		s.printf("Error: %v\n", err)
	}
}

func (s *Shell) println(a ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(s.out, a...)
}

func (s *Shell) printf(format string, a ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.out, format, a...)
}

var _ lifecycle.Renderer = (*Shell)(nil)
