// Package render prints election records, NAS verdicts and contract
// violations for the command line, either as text or as JSON.
package render

import (
	"election/internal/config"
	"election/pkg/contract"
	"election/pkg/domain"
	"election/pkg/nas"
	"io"

	"github.com/fatih/color"
	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// Verdict is the outcome of validating one NAS.
type Verdict struct {
	NAS   string
	Valid bool
}

// Renderer writes output in one format to one writer.
type Renderer struct {
	w      io.Writer
	format string
	ok     *color.Color
	bad    *color.Color
}

// New returns a Renderer writing format ("text" or "json") to w. Colors only
// apply to text output. In config.ColorAuto mode they follow color.NoColor,
// which fatih/color derives from the terminal and NO_COLOR.
func New(w io.Writer, format, colorMode string) (*Renderer, error) {
	if !config.ValidFormat(format) {
		return nil, errors.Errorf("unknown output format %q", format)
	}
	if !config.ValidColor(colorMode) {
		return nil, errors.Errorf("unknown color mode %q", colorMode)
	}

	valid, invalid := color.New(color.FgGreen), color.New(color.FgRed, color.Bold)
	switch colorMode {
	case config.ColorAlways:
		valid.EnableColor()
		invalid.EnableColor()
	case config.ColorNever:
		valid.DisableColor()
		invalid.DisableColor()
	}

	return &Renderer{w: w, format: format, ok: valid, bad: invalid}, nil
}

// Record writes rec. Text output is the record's own Format block.
func (r *Renderer) Record(rec domain.Record) error {
	if r.format == config.FormatText {
		return r.write([]byte(rec.Format()))
	}

	var e jx.Encoder
	encodeRecord(&e, rec)

	return r.writeJSON(&e)
}

// Verdicts writes one line (or one array element) per verdict.
func (r *Renderer) Verdicts(verdicts []Verdict) error {
	if r.format == config.FormatText {
		for _, v := range verdicts {
			verdict := r.ok.Sprint("valid")
			if !v.Valid {
				verdict = r.bad.Sprint("invalid")
			}
			if _, err := io.WriteString(r.w, v.NAS+": "+verdict+"\n"); err != nil {
				return errors.Wrap(err, "write verdict")
			}
		}

		return nil
	}

	var e jx.Encoder
	e.ArrStart()
	for _, v := range verdicts {
		e.ObjStart()
		e.FieldStart("nas")
		e.Str(v.NAS)
		e.FieldStart("valid")
		e.Bool(v.Valid)
		e.ObjEnd()
	}
	e.ArrEnd()

	return r.writeJSON(&e)
}

// Violation writes the diagnostic block of a contract violation.
func (r *Renderer) Violation(v *contract.Violation) error {
	if r.format == config.FormatText {
		return r.write([]byte(r.bad.Sprint(v.Report())))
	}

	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("violation")
	e.ObjStart()
	e.FieldStart("message")
	e.Str(v.Message())
	e.FieldStart("file")
	e.Str(v.File)
	e.FieldStart("line")
	e.Int(v.Line)
	e.FieldStart("function")
	e.Str(v.Function)
	e.FieldStart("expression")
	e.Str(v.Expression)
	e.ObjEnd()
	e.ObjEnd()

	return r.writeJSON(&e)
}

func encodeRecord(e *jx.Encoder, rec domain.Record) {
	e.ObjStart()
	e.FieldStart("kind")
	e.Str(recordKind(rec))
	e.FieldStart("nas")
	e.Str(rec.ID())
	if digits, ok := nas.Digits(rec.ID()); ok {
		e.FieldStart("nasDigits")
		e.Str(digits)
	}
	e.FieldStart("firstName")
	e.Str(rec.FirstName())
	e.FieldStart("lastName")
	e.Str(rec.LastName())
	e.FieldStart("address")
	e.Str(rec.Address())
	e.FieldStart("birthDate")
	e.Str(rec.BirthDate().String())
	if c, ok := rec.(*domain.Candidate); ok {
		e.FieldStart("party")
		e.Str(string(c.Party()))
		e.FieldStart("partyLabel")
		e.Str(c.Party().Label())
	}
	e.ObjEnd()
}

func recordKind(rec domain.Record) string {
	if _, ok := rec.(*domain.Candidate); ok {
		return "candidate"
	}

	return "person"
}

func (r *Renderer) writeJSON(e *jx.Encoder) error {
	return r.write(append(e.Bytes(), '\n'))
}

func (r *Renderer) write(b []byte) error {
	if _, err := r.w.Write(b); err != nil {
		return errors.Wrap(err, "write output")
	}

	return nil
}
