// SPDX-License-Identifier: MIT

package config

// Clone returns a deep copy of the document. Maps are copied so the clone
// and the original never share mutable state.
func (d Document) Clone() Document {
	out := d
	out.Program = cloneStringMap(d.Program)
	if d.CustomAlgorithms != nil {
		out.CustomAlgorithms = make(map[string]AlgorithmOverride, len(d.CustomAlgorithms))
		for name, o := range d.CustomAlgorithms {
			out.CustomAlgorithms[name] = cloneOverride(o)
		}
	}
	return out
}

func cloneStringMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// cloneOverride copies an override including its pointer cells, so applying
// a cloned document can never write through to the source.
func cloneOverride(o AlgorithmOverride) AlgorithmOverride {
	return AlgorithmOverride{
		Aligner:       clonePtr(o.Aligner),
		MaxErrors:     clonePtr(o.MaxErrors),
		NumCores:      clonePtr(o.NumCores),
		Platform:      clonePtr(o.Platform),
		Recalibrate:   clonePtr(o.Recalibrate),
		SNPCall:       clonePtr(o.SNPCall),
		BCMismatch:    clonePtr(o.BCMismatch),
		BCRead:        clonePtr(o.BCRead),
		BCPosition:    clonePtr(o.BCPosition),
		JavaMemory:    clonePtr(o.JavaMemory),
		SaveDiskspace: clonePtr(o.SaveDiskspace),
		DbSNP:         clonePtr(o.DbSNP),
		QualityFormat: clonePtr(o.QualityFormat),
		HybridTarget:  clonePtr(o.HybridTarget),
	}
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
