package printer

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFilePrinterWritesReceiptFile(t *testing.T) {
	dir := t.TempDir()
	p := NewFilePrinter(dir)

	job, err := p.Print([]byte("Pedido: #1\nTOTAL: R$ 25.00"))
	if err != nil {
		t.Fatalf("Print: %v", err)
	}
	if job.FilePath == "" {
		t.Fatal("file printer returned no path")
	}
	if filepath.Dir(job.FilePath) != dir {
		t.Errorf("receipt written to %s, want directory %s", job.FilePath, dir)
	}
	if !strings.HasSuffix(job.FilePath, ".txt") {
		t.Errorf("receipt file should be .txt: %s", job.FilePath)
	}

	data, err := os.ReadFile(job.FilePath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "Pedido: #1\nTOTAL: R$ 25.00" {
		t.Errorf("file content = %q", data)
	}

	if !p.IsConnected() {
		t.Error("file printer should always report connected")
	}
}

func TestFilePrinterUniquePaths(t *testing.T) {
	p := NewFilePrinter(t.TempDir())

	first, err := p.Print([]byte("a"))
	if err != nil {
		t.Fatalf("Print: %v", err)
	}
	second, err := p.Print([]byte("b"))
	if err != nil {
		t.Fatalf("Print: %v", err)
	}
	if first.FilePath == second.FilePath {
		t.Errorf("consecutive prints reused path %s", first.FilePath)
	}
}

func TestNew(t *testing.T) {
	if _, err := New(TypeThermal, "", 9100, ""); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("thermal without host: err = %v, want ErrNotConfigured", err)
	}

	if _, err := New("dot-matrix", "", 0, ""); err == nil {
		t.Error("unknown printer type should fail")
	}

	p, err := New(TypeGenericFile, "", 0, t.TempDir())
	if err != nil {
		t.Fatalf("New generic-file: %v", err)
	}
	if _, ok := p.(*filePrinter); !ok {
		t.Errorf("New returned %T, want *filePrinter", p)
	}

	p, err = New(TypeNone, "", 0, "")
	if err != nil {
		t.Fatalf("New none: %v", err)
	}
	if _, ok := p.(*nullPrinter); !ok {
		t.Errorf("New returned %T, want *nullPrinter", p)
	}

	p, err = New(TypeThermal, "192.168.1.100", 0, "")
	if err != nil {
		t.Fatalf("New thermal: %v", err)
	}
	np, ok := p.(*networkPrinter)
	if !ok {
		t.Fatalf("New returned %T, want *networkPrinter", p)
	}
	// port 0 falls back to the ESC/POS default
	if np.address != "192.168.1.100:9100" {
		t.Errorf("address = %s", np.address)
	}
}

func TestDocumentFraming(t *testing.T) {
	doc := NewDocument(40)
	data := doc.Bytes()
	if !bytes.HasPrefix(data, []byte{ESC, '@'}) {
		t.Errorf("document does not start with init: % x", data[:2])
	}

	doc.Text("hello")
	data = doc.Bytes()
	if !bytes.HasSuffix(data, []byte("hello\n")) {
		t.Errorf("Text did not append line feed: % x", data)
	}

	doc.Cut()
	data = doc.Bytes()
	if !bytes.HasSuffix(data, []byte{GS, 'V', 0x00}) {
		t.Errorf("Cut bytes wrong: % x", data[len(data)-3:])
	}
}

func TestDocumentSeparatorWidth(t *testing.T) {
	doc := NewDocument(40)
	doc.Separator('=')

	line := strings.Repeat("=", 40) + "\n"
	if !bytes.HasSuffix(doc.Bytes(), []byte(line)) {
		t.Error("separator does not span the document width")
	}
}

func TestDocumentRawPreservesText(t *testing.T) {
	text := "Pedido: #1\nTOTAL: R$ 25.00"
	doc := NewDocument(40).Raw(text).FeedLines(2)

	want := append([]byte{ESC, '@'}, []byte(text+"\n\n")...)
	if !bytes.Equal(doc.Bytes(), want) {
		t.Errorf("Raw altered text:\n% x\n% x", doc.Bytes(), want)
	}
}
