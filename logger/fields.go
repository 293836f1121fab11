package logger

import (
	"fmt"
	"os"

	json "github.com/json-iterator/go"
)

// Fields are the key/value pairs of one log entry.
type Fields map[string]any

// JSON encodes f as one line. Keys come out sorted.
func (f Fields) JSON() []byte {
	out, err := json.ConfigCompatibleWithStandardLibrary.Marshal(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return []byte{}
	}

	return append(out, '\n')
}

func (f Fields) Clone() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}

	return out
}

func (f Fields) Merge(m map[string]any) Fields {
	for key, data := range m {
		f[key] = data
	}

	return f
}
