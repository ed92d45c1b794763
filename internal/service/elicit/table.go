package elicit

import (
	"context"
	"fmt"

	"github.com/sandevgo/aurorashell/internal/command"
	"github.com/sandevgo/aurorashell/internal/core"
)

type elicitor func(ctx context.Context, r reader) (command.Command, error)

// table maps every kind to its elicitor. Indexing by Kind keeps the mapping
// total: a missing entry is caught in init.
var table = [command.NumKinds]elicitor{
	command.KindCreateAccount:   createAccount,
	command.KindViewAccount:     viewAccount,
	command.KindDeployAurora:    deployAurora,
	command.KindInit:            initContract,
	command.KindGetChainID:      fixed(command.GetChainID{}),
	command.KindGetNonce:        address(func(a string) command.Command { return command.GetNonce{Address: a} }),
	command.KindGetBlockHash:    getBlockHash,
	command.KindGetCode:         address(func(a string) command.Command { return command.GetCode{Address: a} }),
	command.KindGetBalance:      address(func(a string) command.Command { return command.GetBalance{Address: a} }),
	command.KindGetUpgradeIndex: fixed(command.GetUpgradeIndex{}),
	command.KindGetVersion:      fixed(command.GetVersion{}),
	command.KindGetOwner:        fixed(command.GetOwner{}),
	command.KindSetOwner:        setOwner,
	command.KindGetBridgeProver: fixed(command.GetBridgeProver{}),
	command.KindGetStorageAt:    getStorageAt,
	command.KindRegisterRelayer: address(func(a string) command.Command {
		return command.RegisterRelayer{Address: a}
	}),
	command.KindPausePrecompiles:       pausePrecompiles,
	command.KindResumePrecompiles:      resumePrecompiles,
	command.KindPausedPrecompiles:      fixed(command.PausedPrecompiles{}),
	command.KindFactoryUpdate:          factoryUpdate,
	command.KindFactorySetWnearAddress: factorySetWnearAddress,
	command.KindFundXccSubAccount:      fundXccSubAccount,
	command.KindStageUpgrade:           stageUpgrade,
	command.KindDeployUpgrade:          fixed(command.DeployUpgrade{}),
	command.KindDeploy:                 deploy,
	command.KindViewCall:               viewCall,
	command.KindCall:                   call,
	command.KindEncodeAddress:          encodeAddress,
	command.KindKeyPair:                keyPair,
}

func init() {
	for k, e := range table {
		if e == nil {
			panic(fmt.Sprintf("elicit: no elicitor for %s", command.Kind(k)))
		}
	}
}

// Run asks for the fields of kind through p. It returns either a complete
// command of that kind or an error: a *ValidationError for a rejected
// required field, or the prompter's error (core.ErrClosed,
// core.ErrInterrupted) unchanged in the chain.
func Run(ctx context.Context, p core.Prompter, kind command.Kind) (command.Command, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("unknown command kind %d", int(kind))
	}

	cmd, err := table[kind](ctx, reader{p: p})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", kind, err)
	}
	if cmd.Kind() != kind {
		return nil, fmt.Errorf("%s: elicitor built %s", kind, cmd.Kind())
	}
	return cmd, nil
}
