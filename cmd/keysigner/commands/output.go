package commands

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"keysigner/internal/app"
	"keysigner/internal/domain"
)

// printer renders command results as text or JSON.
type printer struct {
	w      io.Writer
	format string
}

func (p printer) signed(message string, tag domain.Tag) error {
	if p.format == app.OutputJSON {
		return p.json(map[string]any{
			"message":   message,
			"signature": hex.EncodeToString(tag[:]),
		})
	}
	_, err := fmt.Fprintf(p.w, "Message Signature: \n hex: %s \n bytes: %s\n", hex.EncodeToString(tag[:]), byteList(tag[:]))
	return err
}

func (p printer) verified(message, signature string, ok bool) error {
	if p.format == app.OutputJSON {
		return p.json(map[string]any{
			"message":   message,
			"signature": signature,
			"valid":     ok,
		})
	}
	_, err := fmt.Fprintf(p.w, "Message %q and signature %q, signed by the keypair? %t\n", message, signature, ok)
	return err
}

func (p printer) keypair(path string, fp domain.Fingerprint, pub domain.PublicKey) error {
	if p.format == app.OutputJSON {
		return p.json(map[string]any{
			"path":        path,
			"fingerprint": fp.String(),
			"public_key":  hex.EncodeToString(pub[:]),
		})
	}
	_, err := fmt.Fprintf(p.w, "Keypair: %s\nFingerprint: %s\nPublic key: %x\n", path, fp, pub[:])
	return err
}

func (p printer) json(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// byteList formats b as "[1, 2, 3]".
func byteList(b []byte) string {
	parts := make([]string, len(b))
	for i, v := range b {
		parts[i] = strconv.Itoa(int(v))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
