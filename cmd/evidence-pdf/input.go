// seehuhn.de/go/report - evidence reports in PDF format
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/report/evidence"
	"seehuhn.de/go/report/httpreport"
)

// input is the content of an input file.
type input struct {
	Kind   string                 `yaml:"kind"`
	Single *evidence.SingleRecord `yaml:"single"`
	Stack  *evidence.StackRecord  `yaml:"stack"`
}

func parseInput(data []byte) (*input, error) {
	in := &input{}
	err := yaml.Unmarshal(data, in)
	if err != nil {
		return nil, err
	}
	switch in.Kind {
	case "single":
		if in.Single == nil {
			return nil, errors.New("missing single record")
		}
	case "stack":
		if in.Stack == nil {
			return nil, errors.New("missing stack record")
		}
	default:
		return nil, fmt.Errorf("unknown input kind %q", in.Kind)
	}
	return in, nil
}

func readInput(name string) (*input, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	in, err := parseInput(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return in, nil
}

func (in *input) build(opt *evidence.Options) (*evidence.Report, error) {
	if in.Kind == "stack" {
		return evidence.BuildStack(in.Stack, opt)
	}
	return evidence.BuildSingle(in.Single, opt)
}

// dirStore reads records from a directory, one file per record.
type dirStore struct {
	dir string
}

var validID = regexp.MustCompile(`^[A-Za-z0-9_-]{1,128}$`)

func (s *dirStore) load(id, kind string) (*input, error) {
	if !validID.MatchString(id) {
		return nil, httpreport.ErrNotFound
	}
	in, err := readInput(filepath.Join(s.dir, id+".yaml"))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, httpreport.ErrNotFound
	} else if err != nil {
		return nil, err
	}
	if in.Kind != kind {
		return nil, httpreport.ErrNotFound
	}
	return in, nil
}

func (s *dirStore) single(ctx context.Context, id string) (*evidence.SingleRecord, error) {
	in, err := s.load(id, "single")
	if err != nil {
		return nil, err
	}
	return in.Single, nil
}

func (s *dirStore) stack(ctx context.Context, id string) (*evidence.StackRecord, error) {
	in, err := s.load(id, "stack")
	if err != nil {
		return nil, err
	}
	return in.Stack, nil
}
