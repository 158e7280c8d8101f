package yaml

import (
	"context"
	"fmt"
	"io"

	pf "github.com/jt05610/petri-inhibitor/petrifile"
	"gopkg.in/yaml.v3"
)

var _ pf.Service = (*Service)(nil)

type Service struct {
}

func (s *Service) Load(_ context.Context, r io.Reader) (*pf.Petrifile, error) {
	var f pf.Petrifile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, err
	}
	if f.Petri != pf.Unknown && f.Petri != s.Version() {
		return nil, fmt.Errorf("petrifile version %q, expected %q", f.Petri, s.Version())
	}
	return &f, nil
}

// Save writes p as YAML. It round-trips with Load.
func (s *Service) Save(_ context.Context, w io.Writer, p *pf.Petrifile) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return err
	}
	return enc.Close()
}

func (s *Service) Version() pf.Version {
	return pf.V1
}
