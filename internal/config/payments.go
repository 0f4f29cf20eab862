// Copyright (c) 2025 Akiro Labs
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config

type PaymentsConfig struct {
	ethereumRPCURL string
	polygonRPCURL  string
	arbitrumRPCURL string
	optimismRPCURL string
	solanaRPCURL   string
	evmWallet      string
	solanaWallet   string
	strict         bool
}

func NewPaymentsConfig(
	ethereumRPCURL,
	polygonRPCURL,
	arbitrumRPCURL,
	optimismRPCURL,
	solanaRPCURL,
	evmWallet,
	solanaWallet string,
	strict bool,
) PaymentsConfig {
	return PaymentsConfig{
		ethereumRPCURL: ethereumRPCURL,
		polygonRPCURL:  polygonRPCURL,
		arbitrumRPCURL: arbitrumRPCURL,
		optimismRPCURL: optimismRPCURL,
		solanaRPCURL:   solanaRPCURL,
		evmWallet:      evmWallet,
		solanaWallet:   solanaWallet,
		strict:         strict,
	}
}

func (p *PaymentsConfig) EthereumRPCURL() string {
	return p.ethereumRPCURL
}

func (p *PaymentsConfig) PolygonRPCURL() string {
	return p.polygonRPCURL
}

func (p *PaymentsConfig) ArbitrumRPCURL() string {
	return p.arbitrumRPCURL
}

func (p *PaymentsConfig) OptimismRPCURL() string {
	return p.optimismRPCURL
}

func (p *PaymentsConfig) SolanaRPCURL() string {
	return p.solanaRPCURL
}

func (p *PaymentsConfig) EVMWallet() string {
	return p.evmWallet
}

func (p *PaymentsConfig) SolanaWallet() string {
	return p.solanaWallet
}

func (p *PaymentsConfig) Strict() bool {
	return p.strict
}
