package main

import (
	"encoding/json"
	"fmt"
	"io"

	dtcbor "github.com/datatrails/go-datatrails-common/cbor"
)

// Record is the machine readable result of an encode or decode. The index is
// carried as a decimal string because it can be 128 bits wide.
type Record struct {
	Width uint   `json:"width" cbor:"width"`
	X     uint64 `json:"x" cbor:"x"`
	Y     uint64 `json:"y" cbor:"y"`
	Index string `json:"index" cbor:"index"`
}

func newRecordCodec() (dtcbor.CBORCodec, error) {
	return dtcbor.NewCBORCodec(
		dtcbor.NewDeterministicEncOpts(),
		dtcbor.NewDeterministicDecOpts(),
	)
}

// writeRecord prints rec in the given format. In text form encode prints the
// index and decode prints the coordinates.
func writeRecord(w io.Writer, format string, rec Record, decoded bool) error {
	switch format {
	case formatText:
		var err error
		if decoded {
			_, err = fmt.Fprintf(w, "%d %d\n", rec.X, rec.Y)
		} else {
			_, err = fmt.Fprintln(w, rec.Index)
		}
		return err
	case formatJSON:
		return json.NewEncoder(w).Encode(rec)
	case formatCBOR:
		codec, err := newRecordCodec()
		if err != nil {
			return err
		}
		data, err := codec.MarshalCBOR(rec)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}
	return ErrBadFormat
}
