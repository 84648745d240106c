package printer

import (
	"errors"
	"fmt"
	"net"
	"os"
	"time"
)

// ErrNotConfigured is returned when a thermal printer is selected but no
// address has been configured for it.
var ErrNotConfigured = errors.New("printer: no printer address configured")

// Printer type names as stored in settings.
const (
	TypeThermal     = "thermal"
	TypeGenericFile = "generic-file"
	TypeNone        = "none"
)

// Job is the outcome of sending one receipt to a backend.
type Job struct {
	// FilePath is set by the generic-file backend; the file is handed to an
	// OS-level print action outside this process.
	FilePath string `json:"file_path,omitempty"`
}

// Printer is the interface for receipt output backends.
type Printer interface {
	// Print emits one receipt. The data is raw ESC/POS bytes for thermal
	// printers and plain UTF-8 text for the generic-file backend.
	Print(data []byte) (*Job, error)
	// IsConnected returns true if the backend is reachable.
	IsConnected() bool
}

// --- Thermal printer (dials TCP, e.g. 192.168.1.100:9100) ---

type networkPrinter struct {
	address string
	timeout time.Duration
}

// NewNetworkPrinter creates a printer that connects via TCP per print job.
func NewNetworkPrinter(host string, port int) Printer {
	return &networkPrinter{
		address: net.JoinHostPort(host, fmt.Sprintf("%d", port)),
		timeout: 5 * time.Second,
	}
}

func (p *networkPrinter) Print(data []byte) (*Job, error) {
	conn, err := net.DialTimeout("tcp", p.address, p.timeout)
	if err != nil {
		return nil, fmt.Errorf("printer: failed to connect to %s: %w", p.address, err)
	}
	defer conn.Close()

	_ = conn.SetWriteDeadline(time.Now().Add(10 * time.Second))

	if _, err := conn.Write(data); err != nil {
		return nil, fmt.Errorf("printer: failed to write to %s: %w", p.address, err)
	}
	return &Job{}, nil
}

func (p *networkPrinter) IsConnected() bool {
	conn, err := net.DialTimeout("tcp", p.address, 2*time.Second)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

// --- Generic-file printer (writes receipt text to a temporary file) ---

type filePrinter struct {
	dir string
}

// NewFilePrinter creates a printer that writes each receipt to a uniquely
// named temporary file. The caller forwards the path to an OS print action,
// so this backend always reports success. An empty dir means the system
// temp directory.
func NewFilePrinter(dir string) Printer {
	return &filePrinter{dir: dir}
}

func (p *filePrinter) Print(data []byte) (*Job, error) {
	f, err := os.CreateTemp(p.dir, "cupom-*.txt")
	if err != nil {
		return nil, fmt.Errorf("printer: failed to create receipt file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return nil, fmt.Errorf("printer: failed to write receipt file %s: %w", f.Name(), err)
	}
	return &Job{FilePath: f.Name()}, nil
}

func (p *filePrinter) IsConnected() bool {
	return true
}

// --- Null printer (no-op, used when no printer is configured) ---

type nullPrinter struct{}

// NewNullPrinter creates a no-op printer for environments without hardware.
func NewNullPrinter() Printer {
	return &nullPrinter{}
}

func (p *nullPrinter) Print(data []byte) (*Job, error) {
	return &Job{}, nil
}

func (p *nullPrinter) IsConnected() bool {
	return false
}

// New creates the appropriate Printer for the given backend type.
//
//	printerType: TypeThermal, TypeGenericFile, or TypeNone
//	host, port: thermal printer address (host required for thermal)
//	dir: output directory for the generic-file backend ("" = temp dir)
func New(printerType, host string, port int, dir string) (Printer, error) {
	switch printerType {
	case TypeThermal:
		if host == "" {
			return nil, ErrNotConfigured
		}
		if port <= 0 {
			port = 9100
		}
		return NewNetworkPrinter(host, port), nil
	case TypeGenericFile, "":
		return NewFilePrinter(dir), nil
	case TypeNone:
		return NewNullPrinter(), nil
	default:
		return nil, fmt.Errorf("printer: unknown printer type %q", printerType)
	}
}
