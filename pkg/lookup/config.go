package lookup

import (
	"schedfinder/pkg/config"
	"schedfinder/pkg/dataset"
)

// FromConfig builds a Service over the datasets named in cfg, with the
// configured shift tables and opt-out list.
func FromConfig(cfg *config.AppConfig, client *dataset.Client) (*Service, error) {
	opts := []Option{WithOptOut(cfg.OptedOut)}
	for _, c := range dataset.Cycles {
		table, err := cfg.ShiftTable(c)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithShifts(c, table))
	}

	store := dataset.NewStore(cfg.Sources(), client)
	return New(store, opts...), nil
}
