package cmd

import (
	"encoding/base64"
	"encoding/gob"
	"os"
	"strings"

	"github.com/tutils/trand/crypt"
	"github.com/tutils/trand/crypt/xor"
)

var (
	xorCrypt = xor.NewCrypt(33280939)
)

func encodeCmdline() (string, error) {
	w1 := &strings.Builder{}
	w2 := base64.NewEncoder(base64.RawStdEncoding, w1)
	defer w2.Close()
	w3 := xorCrypt.NewEncoder(w2, xor.WithEncoderRandomSourceNewer(crypt.NewPCGSource))
	w4 := gob.NewEncoder(w3)
	if err := w4.Encode(os.Args[1:]); err != nil {
		return "", err
	}
	w2.Close()
	return w1.String(), nil
}

func decodeCmdline(s string) error {
	r1 := strings.NewReader(s)
	r2 := base64.NewDecoder(base64.RawStdEncoding, r1)
	r3 := xorCrypt.NewDecoder(r2, xor.WithDecoderRandomSourceNewer(crypt.NewPCGSource))
	r4 := gob.NewDecoder(r3)
	var args []string
	if err := r4.Decode(&args); err != nil {
		return err
	}
	if len(os.Args) >= 1 {
		os.Args = append(os.Args[1:], args...)
	}
	return nil
}
