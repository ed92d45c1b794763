package elicit

import (
	"context"

	"github.com/sandevgo/aurorashell/internal/command"
)

func createAccount(ctx context.Context, r reader) (command.Command, error) {
	account, err := r.text(ctx, "account", "Please enter the account")
	if err != nil {
		return nil, err
	}
	balance, err := r.amount(ctx, "balance", "Please enter the balance")
	if err != nil {
		return nil, err
	}
	return command.CreateAccount{Account: account, Balance: balance}, nil
}

func viewAccount(ctx context.Context, r reader) (command.Command, error) {
	account, err := r.text(ctx, "account", "Please enter the account")
	if err != nil {
		return nil, err
	}
	return command.ViewAccount{Account: account}, nil
}

func deployAurora(ctx context.Context, r reader) (command.Command, error) {
	path, err := r.text(ctx, "path", "Please enter the path to the WASM file")
	if err != nil {
		return nil, err
	}
	return command.DeployAurora{Path: path}, nil
}

func initContract(ctx context.Context, r reader) (command.Command, error) {
	chainID, err := r.unsigned64(ctx, "chain_id", "Please enter the chain ID")
	if err != nil {
		return nil, err
	}
	ownerID, err := r.optionalText(ctx, "Please enter the owner ID (optional)")
	if err != nil {
		return nil, err
	}
	bridgeProverID, err := r.optionalText(ctx, "Please enter the bridge prover ID (optional)")
	if err != nil {
		return nil, err
	}
	upgradeDelayBlocks, err := r.optionalUint64(ctx, "upgrade_delay_blocks", "Please enter the upgrade delay blocks (optional)")
	if err != nil {
		return nil, err
	}
	custodianAddress, err := r.optionalText(ctx, "Please enter the custodian address (optional)")
	if err != nil {
		return nil, err
	}
	ftMetadataPath, err := r.optionalText(ctx, "Please enter the FT metadata path (optional)")
	if err != nil {
		return nil, err
	}
	return command.Init{
		ChainID:            chainID,
		OwnerID:            ownerID,
		BridgeProverID:     bridgeProverID,
		UpgradeDelayBlocks: upgradeDelayBlocks,
		CustodianAddress:   custodianAddress,
		FtMetadataPath:     ftMetadataPath,
	}, nil
}

// fixed builds an elicitor for a variant without fields. It asks nothing.
func fixed(cmd command.Command) elicitor {
	return func(context.Context, reader) (command.Command, error) {
		return cmd, nil
	}
}

// address builds an elicitor for the variants that only carry an address.
func address(build func(string) command.Command) elicitor {
	return func(ctx context.Context, r reader) (command.Command, error) {
		addr, err := r.text(ctx, "address", "Please enter the address")
		if err != nil {
			return nil, err
		}
		return build(addr), nil
	}
}

func getBlockHash(ctx context.Context, r reader) (command.Command, error) {
	height, err := r.unsigned64(ctx, "height", "Please enter the block height")
	if err != nil {
		return nil, err
	}
	return command.GetBlockHash{Height: height}, nil
}

func setOwner(ctx context.Context, r reader) (command.Command, error) {
	accountID, err := r.text(ctx, "account_id", "Please enter the account ID")
	if err != nil {
		return nil, err
	}
	return command.SetOwner{AccountID: accountID}, nil
}

func getStorageAt(ctx context.Context, r reader) (command.Command, error) {
	addr, err := r.text(ctx, "address", "Please enter the address")
	if err != nil {
		return nil, err
	}
	key, err := r.text(ctx, "key", "Please enter the key")
	if err != nil {
		return nil, err
	}
	return command.GetStorageAt{Address: addr, Key: key}, nil
}

func pausePrecompiles(ctx context.Context, r reader) (command.Command, error) {
	mask, err := r.unsigned32(ctx, "mask", "Please enter the mask")
	if err != nil {
		return nil, err
	}
	return command.PausePrecompiles{Mask: mask}, nil
}

func resumePrecompiles(ctx context.Context, r reader) (command.Command, error) {
	mask, err := r.unsigned32(ctx, "mask", "Please enter the mask")
	if err != nil {
		return nil, err
	}
	return command.ResumePrecompiles{Mask: mask}, nil
}

func factoryUpdate(ctx context.Context, r reader) (command.Command, error) {
	path, err := r.text(ctx, "path", "Please enter the path to the update file")
	if err != nil {
		return nil, err
	}
	return command.FactoryUpdate{Path: path}, nil
}

func factorySetWnearAddress(ctx context.Context, r reader) (command.Command, error) {
	addr, err := r.text(ctx, "address", "Please enter the WNEAR address")
	if err != nil {
		return nil, err
	}
	return command.FactorySetWnearAddress{Address: addr}, nil
}

func fundXccSubAccount(ctx context.Context, r reader) (command.Command, error) {
	target, err := r.text(ctx, "target", "Please enter the target account")
	if err != nil {
		return nil, err
	}
	wnearAccountID, err := r.optionalText(ctx, "Please enter the WNEAR account ID (optional)")
	if err != nil {
		return nil, err
	}
	deposit, err := r.amount(ctx, "deposit", "Please enter the deposit amount")
	if err != nil {
		return nil, err
	}
	return command.FundXccSubAccount{
		Target:         target,
		WnearAccountID: wnearAccountID,
		Deposit:        deposit,
	}, nil
}

func stageUpgrade(ctx context.Context, r reader) (command.Command, error) {
	path, err := r.text(ctx, "path", "Please enter the path to the upgrade file")
	if err != nil {
		return nil, err
	}
	return command.StageUpgrade{Path: path}, nil
}

func deploy(ctx context.Context, r reader) (command.Command, error) {
	code, err := r.text(ctx, "code", "Please enter the code")
	if err != nil {
		return nil, err
	}
	args, err := r.optionalText(ctx, "Please enter the arguments (optional)")
	if err != nil {
		return nil, err
	}
	abiPath, err := r.optionalText(ctx, "Please enter the ABI path (optional)")
	if err != nil {
		return nil, err
	}
	secretKey, err := r.optionalText(ctx, "Please enter the Aurora secret key (optional)")
	if err != nil {
		return nil, err
	}
	return command.Deploy{
		Code:            code,
		Args:            args,
		AbiPath:         abiPath,
		AuroraSecretKey: secretKey,
	}, nil
}

// callTarget holds the prompts ViewCall and Call share, in their asking order.
type callTarget struct {
	address  string
	function string
	args     *string
	abiPath  string
}

func (r reader) callTarget(ctx context.Context) (callTarget, error) {
	var c callTarget
	var err error
	if c.address, err = r.text(ctx, "address", "Please enter the address"); err != nil {
		return c, err
	}
	if c.function, err = r.text(ctx, "function", "Please enter the function"); err != nil {
		return c, err
	}
	if c.args, err = r.optionalText(ctx, "Please enter the arguments (optional)"); err != nil {
		return c, err
	}
	if c.abiPath, err = r.text(ctx, "abi_path", "Please enter the ABI path"); err != nil {
		return c, err
	}
	return c, nil
}

func viewCall(ctx context.Context, r reader) (command.Command, error) {
	c, err := r.callTarget(ctx)
	if err != nil {
		return nil, err
	}
	return command.ViewCall{
		Address:  c.address,
		Function: c.function,
		Args:     c.args,
		AbiPath:  c.abiPath,
	}, nil
}

func call(ctx context.Context, r reader) (command.Command, error) {
	c, err := r.callTarget(ctx)
	if err != nil {
		return nil, err
	}
	value, err := r.optionalText(ctx, "Please enter the value (optional)")
	if err != nil {
		return nil, err
	}
	secretKey, err := r.optionalText(ctx, "Please enter the Aurora secret key (optional)")
	if err != nil {
		return nil, err
	}
	return command.Call{
		Address:         c.address,
		Function:        c.function,
		Args:            c.args,
		AbiPath:         c.abiPath,
		Value:           value,
		AuroraSecretKey: secretKey,
	}, nil
}

func encodeAddress(ctx context.Context, r reader) (command.Command, error) {
	account, err := r.text(ctx, "account", "Please enter the account")
	if err != nil {
		return nil, err
	}
	return command.EncodeAddress{Account: account}, nil
}

// keyPair only asks for a seed when the operator declines a random pair.
func keyPair(ctx context.Context, r reader) (command.Command, error) {
	random, err := r.confirm(ctx, "Generate a random key pair?")
	if err != nil {
		return nil, err
	}
	if random {
		return command.KeyPair{Random: true}, nil
	}
	seed, err := r.unsigned64(ctx, "seed", "Please enter the seed")
	if err != nil {
		return nil, err
	}
	return command.KeyPair{Random: false, Seed: &seed}, nil
}
