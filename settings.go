package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/buger/jsonparser"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"dscheirer.com/hc164/seg4digit"
)

const (
	sDataPin        = "dataPin"
	sClockPin       = "clockPin"
	sDigitPins      = "digitPins"
	sRefreshRate    = "refreshRate"
	sScrollInterval = "scrollInterval"
	sErrorDuration  = "errorDuration"
	sBackend        = "backend"
	sSimulated      = "simulated"
	sDebug          = "debugDump"
	sLogFile        = "logFile"
	sDemoStep       = "demoStep"
	sLoopSleep      = "loopSleep"
)

// keep settings generic, type-convert on the fly
type settings struct {
	settings map[string]interface{}
}

func defaultSettings() *settings {
	s := make(map[string]interface{})

	// setting the type here makes the conversion "automatic" later
	s[sDataPin] = 17
	s[sClockPin] = 27
	s[sDigitPins] = "22,23,24,25"
	s[sRefreshRate] = seg4digit.DefaultRefreshRate
	s[sScrollInterval] = seg4digit.DefaultScrollInterval
	s[sErrorDuration] = seg4digit.DefaultErrorDuration
	s[sBackend] = "rpio"
	s[sDebug] = false
	s[sLogFile] = "/var/log/hc164.log"
	s[sDemoStep] = 5 * time.Second
	s[sLoopSleep] = time.Millisecond

	on := true
	if runtime.GOARCH == "arm" || runtime.GOARCH == "arm64" {
		on = false
	}
	s[sSimulated] = on

	return &settings{settings: s}
}

func (s *settings) settingsFromJSON(data []byte) error {
	tmp := defaultSettings()
	for k, initVal := range tmp.settings {
		// ignore missing fields
		if _, _, _, err := jsonparser.Get(data, k); err == jsonparser.KeyPathNotFoundError {
			continue
		}

		var err error
		switch initVal.(type) {
		case int:
			var val int64
			val, err = jsonparser.GetInt(data, k)
			if err != nil {
				// "0x11" style strings
				str, err2 := jsonparser.GetString(data, k)
				if err2 == nil {
					val, err = strconv.ParseInt(str, 0, 64)
				}
			}
			if err == nil {
				s.settings[k] = int(val)
			}
		case bool:
			var bVal bool
			bVal, err = jsonparser.GetBoolean(data, k)
			if err != nil {
				// try "true" and "false"
				str, _ := jsonparser.GetString(data, k)
				bVal, err = strconv.ParseBool(strings.ToLower(str))
			}
			if err == nil {
				s.settings[k] = bVal
			}
		case time.Duration:
			var dur string
			dur, err = jsonparser.GetString(data, k)
			if err == nil {
				var d time.Duration
				d, err = time.ParseDuration(dur)
				if err == nil {
					s.settings[k] = d
				}
			}
		case string:
			var str string
			str, err = jsonparser.GetString(data, k)
			if err == nil {
				s.settings[k] = str
			}
		default:
			err = errors.Errorf("bad type: %T", initVal)
		}
		if err != nil {
			return errors.Wrapf(err, "setting %s", k)
		}
	}
	return nil
}

func (s *settings) settingsFromYAML(data []byte) error {
	raw := make(map[string]interface{})
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "yaml")
	}

	tmp := defaultSettings()
	for k, initVal := range tmp.settings {
		v, ok := raw[k]
		if !ok {
			continue
		}

		var err error
		switch initVal.(type) {
		case int:
			switch val := v.(type) {
			case int:
				s.settings[k] = val
			case string:
				var i int64
				i, err = strconv.ParseInt(val, 0, 64)
				s.settings[k] = int(i)
			default:
				err = errors.Errorf("want an integer, got %T", v)
			}
		case bool:
			switch val := v.(type) {
			case bool:
				s.settings[k] = val
			case string:
				var b bool
				b, err = strconv.ParseBool(strings.ToLower(val))
				s.settings[k] = b
			default:
				err = errors.Errorf("want a boolean, got %T", v)
			}
		case time.Duration:
			str, isString := v.(string)
			if !isString {
				err = errors.Errorf("want a duration string, got %T", v)
				break
			}
			var d time.Duration
			d, err = time.ParseDuration(str)
			s.settings[k] = d
		case string:
			// digitPins may be written as a list
			switch val := v.(type) {
			case []interface{}:
				parts := make([]string, len(val))
				for i, p := range val {
					parts[i] = yamlScalar(p)
				}
				s.settings[k] = strings.Join(parts, ",")
			default:
				s.settings[k] = yamlScalar(val)
			}
		default:
			err = errors.Errorf("bad type: %T", initVal)
		}
		if err != nil {
			// leave the default in place
			s.settings[k] = initVal
			return errors.Wrapf(err, "setting %s", k)
		}
	}
	return nil
}

func yamlScalar(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case bool:
		return strconv.FormatBool(val)
	default:
		return ""
	}
}

// loadSettings overlays the defaults with a JSON or YAML file, picked by
// extension.
func loadSettings(path string) (*settings, error) {
	s := defaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not load conf file '%s'", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = s.settingsFromYAML(data)
	default:
		err = s.settingsFromJSON(data)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "parsing '%s'", path)
	}
	return s, nil
}

func initSettings() *settings {
	log.Println("initSettings")

	configFile := flag.String("config", "/etc/default/hc164/hc164.conf", "config file path (.json or .yaml)")
	backend := flag.String("backend", "", "override the backend: rpio, periph, term or log")
	flag.Parse()

	s, err := loadSettings(*configFile)
	if err != nil {
		log.Fatal(err.Error())
	}
	log.Printf("Reading configuration from '%s'", *configFile)

	if *backend != "" {
		s.settings[sBackend] = *backend
	}
	return s
}

func (s *settings) GetString(key string) string {
	switch v := s.settings[key].(type) {
	case string:
		return v
	default:
		return ""
	}
}

func (s *settings) GetBool(key string) bool {
	switch v := s.settings[key].(type) {
	case bool:
		return v
	default:
		return false
	}
}

func (s *settings) GetDuration(key string) time.Duration {
	switch v := s.settings[key].(type) {
	case time.Duration:
		return v
	default:
		return -1
	}
}

func (s *settings) GetInt(key string) int {
	switch v := s.settings[key].(type) {
	case int:
		return v
	default:
		return 0
	}
}

// GetIntList splits a comma separated setting.
func (s *settings) GetIntList(key string) ([]int, error) {
	str := s.GetString(key)
	if str == "" {
		return nil, errors.Errorf("%s is empty", key)
	}
	parts := strings.Split(str, ",")
	ret := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, errors.Wrapf(err, "%s item %d", key, i)
		}
		ret[i] = v
	}
	return ret, nil
}

func (s *settings) Dump() {
	for k, v := range s.settings {
		log.Printf("%s : %T: %v\n", k, v, v)
	}
}
