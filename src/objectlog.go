package aprsobj

/*------------------------------------------------------------------
 *
 * Purpose:	Remember the objects and items we own across restarts.
 *
 * Description:	Every packet we build for one of our own objects is
 *		appended to a plain text log, one packet per line.
 *		When we give an object up, every line for it is turned
 *		into a comment by putting '#' in front.  On startup the
 *		lines that are left are decoded again and the objects
 *		adopted once more.
 *
 *		The file is opened and closed for each operation,
 *		under an flock on a lock file beside it so objectd
 *		and objencode users can share one log.  Nothing here
 *		retries; the caller decides what a failure means.
 *
 *------------------------------------------------------------------*/

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"
)

// ObjectLogName is where the log lives under the base directory.
var ObjectLogName = filepath.Join("config", "object.log")

type ObjectLog struct {
	Path string
}

func NewObjectLog(baseDir string) *ObjectLog {
	return &ObjectLog{Path: filepath.Join(baseDir, ObjectLogName)}
}

// lock takes the exclusive lock for the log.  The directory must exist.
func (l *ObjectLog) lock() (func(), error) {
	var f, err = os.OpenFile(l.Path+".lock", os.O_CREATE|os.O_RDWR, 0o644) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("object log lock: %w", err)
	}

	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX); err != nil { //nolint:gosec
		f.Close()
		return nil, fmt.Errorf("object log lock: %w", err)
	}

	return func() {
		_ = unix.Flock(int(f.Fd()), unix.LOCK_UN) //nolint:gosec
		f.Close()
	}, nil
}

/*------------------------------------------------------------------
 *
 * Function:	Append
 *
 * Purpose:	Save a packet we just built.
 *
 * Inputs:	line	- Information part of the packet.
 *		disable	- True when the object is being given up, so
 *			  it shouldn't come back after a restart.
 *		name	- Object or item name, used with disable.
 *
 *------------------------------------------------------------------*/

func (l *ObjectLog) Append(line string, disable bool, name string) error {
	if err := os.MkdirAll(filepath.Dir(l.Path), 0o755); err != nil {
		dw_printf(DW_COLOR_ERROR, "Couldn't create directory for object log \"%s\": %s\n", l.Path, err)
		return fmt.Errorf("object log directory: %w", err)
	}

	var unlock, lockErr = l.lock()
	if lockErr != nil {
		return lockErr
	}
	defer unlock()

	var f, err = os.OpenFile(l.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644) //nolint:gosec
	if err != nil {
		dw_printf(DW_COLOR_ERROR, "Couldn't open object log \"%s\" for append: %s\n", l.Path, err)
		return fmt.Errorf("open object log: %w", err)
	}

	var _, writeErr = fmt.Fprintf(f, "%s\n", line)
	var closeErr = f.Close()
	if writeErr != nil {
		return fmt.Errorf("write object log: %w", writeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("close object log: %w", closeErr)
	}

	if disable {
		return l.disown(name)
	}

	return nil
}

// lineIsFor tells whether a logged packet belongs to name.
func lineIsFor(line, name string) bool {
	if len(line) == 0 {
		return false
	}

	switch line[0] {
	case ';':
		if len(line) < 1+objectNameWidth {
			return false
		}
		return strings.TrimRight(line[1:1+objectNameWidth], " ") == name
	case ')':
		var end = strings.IndexAny(line[1:], "!_")
		return end >= 0 && line[1:1+end] == name
	default:
		return false
	}
}

/*------------------------------------------------------------------
 *
 * Function:	Disown
 *
 * Purpose:	Comment out every line for the named object or item.
 *
 * Description:	Written to a temporary file next to the log, which
 *		then replaces it.  A missing log is not an error.
 *
 *------------------------------------------------------------------*/

func (l *ObjectLog) Disown(name string) error {
	if _, err := os.Stat(l.Path); os.IsNotExist(err) {
		return nil
	}

	var unlock, lockErr = l.lock()
	if lockErr != nil {
		return lockErr
	}
	defer unlock()

	return l.disown(name)
}

// disown does the work of Disown with the lock held.
func (l *ObjectLog) disown(name string) error {
	var in, err = os.Open(l.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		dw_printf(DW_COLOR_ERROR, "Couldn't open object log \"%s\": %s\n", l.Path, err)
		return fmt.Errorf("open object log: %w", err)
	}
	defer in.Close()

	var tmp, tmpErr = os.CreateTemp(filepath.Dir(l.Path), "object-*.log")
	if tmpErr != nil {
		dw_printf(DW_COLOR_ERROR, "Couldn't create temporary object log: %s\n", tmpErr)
		return fmt.Errorf("temporary object log: %w", tmpErr)
	}
	var tmpName = tmp.Name()

	var w = bufio.NewWriter(tmp)
	var scanner = bufio.NewScanner(in)
	for scanner.Scan() {
		var line = scanner.Text()
		if lineIsFor(line, name) {
			line = "#" + line
		}
		fmt.Fprintf(w, "%s\n", line)
	}

	var scanErr = scanner.Err()
	var flushErr = w.Flush()
	var closeErr = tmp.Close()

	for _, e := range []error{scanErr, flushErr, closeErr} {
		if e != nil {
			_ = os.Remove(tmpName)
			return fmt.Errorf("rewrite object log: %w", e)
		}
	}

	if err := os.Rename(tmpName, l.Path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace object log: %w", err)
	}

	dw_printf(DW_COLOR_INFO, "Disowned %s in object log.\n", name)

	return nil
}

/*------------------------------------------------------------------
 *
 * Function:	Reload
 *
 * Purpose:	Read back the objects and items still in the log.
 *
 * Inputs:	mycall	- Our callsign, recorded as the owner.
 *		adopt	- Called for each object in file order, so a
 *			  later line for the same name wins.
 *
 * Returns:	How many lines were adopted and how many were
 *		skipped because they couldn't be decoded.
 *
 *------------------------------------------------------------------*/

func (l *ObjectLog) Reload(mycall string, adopt func(*Object)) (int, int, error) {
	var f, err = os.Open(l.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, 0, nil
		}
		return 0, 0, fmt.Errorf("open object log: %w", err)
	}
	defer f.Close()

	return reloadFrom(f, mycall, adopt)
}

func reloadFrom(r io.Reader, mycall string, adopt func(*Object)) (int, int, error) {
	var loaded, skipped int

	var scanner = bufio.NewScanner(r)
	var lineNo = 0
	for scanner.Scan() {
		lineNo++
		var line = strings.TrimRight(scanner.Text(), "\r")

		if len(strings.TrimSpace(line)) == 0 || line[0] == '#' {
			continue
		}

		var o, decodeErr = DecodeObjectItem(line)
		if decodeErr != nil {
			dw_printf(DW_COLOR_ERROR, "Object log line %d skipped: %s\n", lineNo, decodeErr)
			skipped++
			continue
		}

		o.Origin = mycall
		adopt(o)
		loaded++
	}

	if err := scanner.Err(); err != nil {
		return loaded, skipped, fmt.Errorf("read object log: %w", err)
	}

	return loaded, skipped, nil
}
