package aprsobj

/*------------------------------------------------------------------
 *
 * Purpose:	Where objectd sends its packets, other than stdout,
 *		and how it tells the local network about its metrics.
 *
 * Description:	A serial port leads to a TNC in converse / monitor
 *		text mode.  A pseudo terminal lets another program on
 *		this machine open the slave side as if it were one.
 *
 *		The metrics endpoint can be announced with DNS-SD so
 *		a collector can find it without being told the port.
 *
 *------------------------------------------------------------------*/

import (
	"context"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/brutella/dnssd"
	"github.com/creack/pty"
	"github.com/pkg/term"
)

/*-------------------------------------------------------------------
 *
 * Name:	OpenSerialOutput
 *
 * Inputs:	device	- e.g. /dev/ttyUSB0
 *		baud	- Speed.  0 leaves it alone.  Anything unusual
 *			  gets 4800.
 *
 *---------------------------------------------------------------*/

func OpenSerialOutput(device string, baud int) (*term.Term, error) {
	var fd, err = term.Open(device, term.RawMode)
	if err != nil {
		dw_printf(DW_COLOR_ERROR, "ERROR - Could not open serial port %s: %s.\n", device, err)
		return nil, fmt.Errorf("serial port %s: %w", device, err)
	}

	switch baud {
	case 0:
	case 1200, 2400, 4800, 9600, 19200, 38400, 57600, 115200:
		err = fd.SetSpeed(baud)
	default:
		dw_printf(DW_COLOR_ERROR, "Unsupported serial speed %d.  Using 4800.\n", baud)
		err = fd.SetSpeed(4800)
	}

	if err != nil {
		fd.Close()
		return nil, fmt.Errorf("serial port %s speed: %w", device, err)
	}

	return fd, nil
}

// OpenPTYOutput creates a pseudo terminal.  We write to the master;
// the slave is left open so writes don't fail before a reader shows up.
func OpenPTYOutput() (*os.File, *os.File, error) {
	var ptmx, pts, err = pty.Open()
	if err != nil {
		dw_printf(DW_COLOR_ERROR, "ERROR - Could not create pseudo terminal: %s.\n", err)
		return nil, nil, fmt.Errorf("pseudo terminal: %w", err)
	}

	dw_printf(DW_COLOR_INFO, "Packets are available on %s\n", pts.Name())

	return ptmx, pts, nil
}

const metricsServiceType = "_http._tcp"

func defaultServiceName() string {
	var hostname, err = os.Hostname()
	if err != nil {
		return "aprsobj"
	}

	hostname, _, _ = strings.Cut(hostname, ".")

	return "aprsobj on " + hostname
}

// portOf picks the port number out of a listen address like ":9101".
func portOf(addr string) (int, error) {
	var _, port, err = net.SplitHostPort(addr)
	if err != nil {
		return 0, fmt.Errorf("address %q: %w", addr, err)
	}

	var n, convErr = strconv.Atoi(port)
	if convErr != nil || n <= 0 || n > 65535 {
		return 0, fmt.Errorf("address %q has no usable port", addr)
	}

	return n, nil
}

/*-------------------------------------------------------------------
 *
 * Name:	AnnounceMetrics
 *
 * Purpose:	Announce the metrics HTTP endpoint with DNS-SD until
 *		ctx is done.
 *
 * Inputs:	name	- Service name.  Empty for "aprsobj on <host>".
 *		addr	- The metrics listen address.
 *
 *---------------------------------------------------------------*/

func AnnounceMetrics(ctx context.Context, name string, addr string) error {
	var port, portErr = portOf(addr)
	if portErr != nil {
		return portErr
	}

	if name == "" {
		name = defaultServiceName()
	}

	var sv, svErr = dnssd.NewService(dnssd.Config{ //nolint:exhaustruct
		Name: name,
		Type: metricsServiceType,
		Port: port,
		Text: map[string]string{"path": "/metrics"},
	})
	if svErr != nil {
		return fmt.Errorf("DNS-SD service: %w", svErr)
	}

	var rp, rpErr = dnssd.NewResponder()
	if rpErr != nil {
		return fmt.Errorf("DNS-SD responder: %w", rpErr)
	}

	if _, err := rp.Add(sv); err != nil {
		return fmt.Errorf("DNS-SD add service: %w", err)
	}

	dw_printf(DW_COLOR_INFO, "DNS-SD: Announcing metrics on port %d as '%s'\n", port, name)

	go func() {
		if err := rp.Respond(ctx); err != nil && ctx.Err() == nil {
			dw_printf(DW_COLOR_ERROR, "DNS-SD: Responder error: %v\n", err)
		}
	}()

	return nil
}
