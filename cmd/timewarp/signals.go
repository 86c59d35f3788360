package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/timewarp/dtw"
	"gopkg.in/yaml.v3"
)

var (
	errNoSignals      = errors.New("signal file defines no signals")
	errUnknownSignal  = errors.New("unknown signal")
	errDuplicateName  = errors.New("duplicate signal name")
	errAmbiguousShape = errors.New("signal needs exactly one of values or vectors")
)

// signalSpec is one named series in a signal file.
type signalSpec struct {
	Name    string      `yaml:"name"`
	Values  []float64   `yaml:"values,omitempty"`
	Vectors [][]float64 `yaml:"vectors,omitempty"`
}

// signalFile is the YAML document read by align and pairwise.
type signalFile struct {
	Distance string       `yaml:"distance"`
	Radius   int          `yaml:"radius"`
	Signals  []signalSpec `yaml:"signals"`
}

// signalSet is a parsed signal file with sequences resolved and indexed.
type signalSet struct {
	distance string
	radius   int
	names    []string
	seqs     map[string]*dtw.Sequence
}

func loadSignals(path string) (*signalSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read signal file: %w", err)
	}
	set, err := parseSignals(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return set, nil
}

func parseSignals(data []byte) (*signalSet, error) {
	var f signalFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse signal file: %w", err)
	}
	if len(f.Signals) == 0 {
		return nil, errNoSignals
	}
	if f.Radius < 0 {
		return nil, fmt.Errorf("radius %d: %w", f.Radius, dtw.ErrBadRadius)
	}
	if _, err := dtw.DistanceByName(f.Distance); err != nil {
		return nil, err
	}

	set := &signalSet{
		distance: f.Distance,
		radius:   f.Radius,
		names:    make([]string, 0, len(f.Signals)),
		seqs:     make(map[string]*dtw.Sequence, len(f.Signals)),
	}
	for k, spec := range f.Signals {
		if spec.Name == "" {
			spec.Name = fmt.Sprintf("signal%d", k)
		}
		if _, dup := set.seqs[spec.Name]; dup {
			return nil, fmt.Errorf("%q: %w", spec.Name, errDuplicateName)
		}
		seq, err := spec.sequence()
		if err != nil {
			return nil, fmt.Errorf("signal %q: %w", spec.Name, err)
		}
		set.names = append(set.names, spec.Name)
		set.seqs[spec.Name] = seq
	}

	return set, nil
}

func (s signalSpec) sequence() (*dtw.Sequence, error) {
	switch {
	case len(s.Values) > 0 && len(s.Vectors) == 0:
		return dtw.NewSequence(s.Values...)
	case len(s.Vectors) > 0 && len(s.Values) == 0:
		return dtw.NewVectorSequence(s.Vectors)
	default:
		return nil, errAmbiguousShape
	}
}

func (s *signalSet) lookup(name string) (*dtw.Sequence, error) {
	seq, ok := s.seqs[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, errUnknownSignal)
	}

	return seq, nil
}

// zNormalized returns a copy of s with every sequence z-normalized.
func (s *signalSet) zNormalized() (*signalSet, error) {
	out := &signalSet{
		distance: s.distance,
		radius:   s.radius,
		names:    s.names,
		seqs:     make(map[string]*dtw.Sequence, len(s.seqs)),
	}
	for _, name := range s.names {
		z, err := s.seqs[name].ZNormalize()
		if err != nil {
			return nil, fmt.Errorf("signal %q: %w", name, err)
		}
		out.seqs[name] = z
	}

	return out, nil
}
