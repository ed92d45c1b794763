package command

import "fmt"

// Kind enumerates the administrative operations. The declaration order is the
// menu order.
type Kind int

const (
	KindCreateAccount Kind = iota
	KindViewAccount
	KindDeployAurora
	KindInit
	KindGetChainID
	KindGetNonce
	KindGetBlockHash
	KindGetCode
	KindGetBalance
	KindGetUpgradeIndex
	KindGetVersion
	KindGetOwner
	KindSetOwner
	KindGetBridgeProver
	KindGetStorageAt
	KindRegisterRelayer
	KindPausePrecompiles
	KindResumePrecompiles
	KindPausedPrecompiles
	KindFactoryUpdate
	KindFactorySetWnearAddress
	KindFundXccSubAccount
	KindStageUpgrade
	KindDeployUpgrade
	KindDeploy
	KindViewCall
	KindCall
	KindEncodeAddress
	KindKeyPair

	// NumKinds must stay last.
	NumKinds
)

type kindInfo struct {
	name string
	desc string
}

var kinds = [NumKinds]kindInfo{
	KindCreateAccount:          {"CreateAccount", "Create a new NEAR account with an initial balance"},
	KindViewAccount:            {"ViewAccount", "View a NEAR account"},
	KindDeployAurora:           {"DeployAurora", "Deploy the Aurora EVM WASM contract"},
	KindInit:                   {"Init", "Initialize the Aurora EVM contract"},
	KindGetChainID:             {"GetChainId", "Return the chain id"},
	KindGetNonce:               {"GetNonce", "Return the nonce of an address"},
	KindGetBlockHash:           {"GetBlockHash", "Return the hash of a block"},
	KindGetCode:                {"GetCode", "Return the code deployed at an address"},
	KindGetBalance:             {"GetBalance", "Return the balance of an address"},
	KindGetUpgradeIndex:        {"GetUpgradeIndex", "Return the staged upgrade index"},
	KindGetVersion:             {"GetVersion", "Return the contract version"},
	KindGetOwner:               {"GetOwner", "Return the contract owner"},
	KindSetOwner:               {"SetOwner", "Change the contract owner"},
	KindGetBridgeProver:        {"GetBridgeProver", "Return the bridge prover account"},
	KindGetStorageAt:           {"GetStorageAt", "Return a storage slot of an address"},
	KindRegisterRelayer:        {"RegisterRelayer", "Register a relayer address"},
	KindPausePrecompiles:       {"PausePrecompiles", "Pause the precompiles selected by a mask"},
	KindResumePrecompiles:      {"ResumePrecompiles", "Resume the precompiles selected by a mask"},
	KindPausedPrecompiles:      {"PausedPrecompiles", "Return the mask of paused precompiles"},
	KindFactoryUpdate:          {"FactoryUpdate", "Update the XCC router bytecode"},
	KindFactorySetWnearAddress: {"FactorySetWnearAddress", "Set the wNEAR address used by XCC"},
	KindFundXccSubAccount:      {"FundXccSubAccount", "Fund an XCC sub-account"},
	KindStageUpgrade:           {"StageUpgrade", "Stage a contract upgrade"},
	KindDeployUpgrade:          {"DeployUpgrade", "Deploy the staged upgrade"},
	KindDeploy:                 {"Deploy", "Deploy EVM bytecode"},
	KindViewCall:               {"ViewCall", "Call a read-only contract function"},
	KindCall:                   {"Call", "Call a state-modifying contract function"},
	KindEncodeAddress:          {"EncodeAddress", "Encode a NEAR account id as an EVM address"},
	KindKeyPair:                {"KeyPair", "Generate a key pair"},
}

func init() {
	seen := make(map[string]Kind, NumKinds)
	for k := Kind(0); k < NumKinds; k++ {
		name := kinds[k].name
		if name == "" {
			panic(fmt.Sprintf("command: kind %d has no name", int(k)))
		}
		if prev, ok := seen[name]; ok {
			panic(fmt.Sprintf("command: kinds %d and %d share the name %q", int(prev), int(k), name))
		}
		seen[name] = k
	}
}

func (k Kind) Valid() bool {
	return k >= 0 && k < NumKinds
}

// String returns the menu label.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kinds[k].name
}

func (k Kind) Description() string {
	if !k.Valid() {
		return ""
	}
	return kinds[k].desc
}

// Kinds returns every kind in menu order.
func Kinds() []Kind {
	out := make([]Kind, NumKinds)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// Labels returns the menu labels in menu order.
func Labels() []string {
	out := make([]string, NumKinds)
	for i := range out {
		out[i] = kinds[i].name
	}
	return out
}

func ParseKind(name string) (Kind, bool) {
	for k := Kind(0); k < NumKinds; k++ {
		if kinds[k].name == name {
			return k, true
		}
	}
	return 0, false
}
