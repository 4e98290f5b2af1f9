/*
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/hyperledger/fabric-contract-api-go/contractapi"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/dhanush-adi/TraceAyur/internal/contract"
	"github.com/dhanush-adi/TraceAyur/pkg/logger"
)

type config struct {
	// CCID and Address are set when the chaincode runs as an external
	// service; leave Address empty for peer-launched mode.
	CCID        string `envconfig:"CHAINCODE_ID"`
	Address     string `envconfig:"CHAINCODE_SERVER_ADDRESS"`
	TLSDisabled bool   `envconfig:"CHAINCODE_TLS_DISABLED" default:"true"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
}

func main() {
	_ = godotenv.Load()

	var cfg config
	if err := envconfig.Process("", &cfg); err != nil {
		bootLog := logger.New("herbtrace", "info")
		bootLog.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.New("herbtrace", cfg.LogLevel)

	chaincode, err := contractapi.NewChaincode(contract.New(log))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create chaincode")
	}

	if cfg.Address != "" {
		server := &shim.ChaincodeServer{
			CCID:    cfg.CCID,
			Address: cfg.Address,
			CC:      chaincode,
			TLSProps: shim.TLSProperties{
				Disabled: cfg.TLSDisabled,
			},
		}
		log.Info().Str("address", cfg.Address).Msg("starting chaincode server")
		if err := server.Start(); err != nil {
			log.Fatal().Err(err).Msg("chaincode server stopped")
		}
		return
	}

	log.Info().Msg("starting peer-launched chaincode")
	if err := chaincode.Start(); err != nil {
		log.Fatal().Err(err).Msg("chaincode stopped")
	}
}
