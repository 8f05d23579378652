package main

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/mireth/seqalign/editgraph"
	"github.com/mireth/seqalign/seqcost"
)

// costProfile is the TOML shape accepted by --cost-profile. It lets a user
// charge insertion, deletion, and substitution differently without
// recompiling editdiff.
//
//	insert_cost = 1
//	delete_cost = 1
//	substitute_cost = 1
type costProfile struct {
	InsertCost     int `toml:"insert_cost"`
	DeleteCost     int `toml:"delete_cost"`
	SubstituteCost int `toml:"substitute_cost"`
}

// defaultCostProfile matches seqcost.Unit's classic Levenshtein weights.
func defaultCostProfile() costProfile {
	return costProfile{InsertCost: 1, DeleteCost: 1, SubstituteCost: 1}
}

// loadCostProfile reads and parses a TOML cost profile from path.
func loadCostProfile(path string) (costProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return costProfile{}, err
	}
	cp := defaultCostProfile()
	if err := toml.Unmarshal(data, &cp); err != nil {
		return costProfile{}, err
	}
	return cp, nil
}

// policy builds a CostPolicy over lines (compared as whole strings) from cp.
func (cp costProfile) policy() editgraph.CostPolicy[string, string, int] {
	return seqcost.UniformSub[string, int](cp.InsertCost, cp.DeleteCost, cp.SubstituteCost)
}
