package agent

// Params holds the parameter mapping extracted by the classifier. The
// values come from JSON, so numbers arrive as float64 and lists as
// []interface{}; the accessors normalize that and treat missing or
// mistyped values as absent.
type Params map[string]interface{}

func (p Params) String(key string) string {
	s, _ := p[key].(string)
	return s
}

func (p Params) Float(key string) (float64, bool) {
	switch v := p[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}

func (p Params) Int(key string) (int, bool) {
	f, ok := p.Float(key)
	if !ok {
		return 0, false
	}
	return int(f), true
}

func (p Params) StringList(key string) []string {
	switch v := p[key].(type) {
	case []string:
		return v
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func (p Params) FloatMap(key string) map[string]float64 {
	switch v := p[key].(type) {
	case map[string]float64:
		return v
	case map[string]interface{}:
		out := make(map[string]float64, len(v))
		for k, item := range v {
			if f, ok := item.(float64); ok {
				out[k] = f
			}
		}
		return out
	}
	return nil
}
