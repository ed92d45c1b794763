package command

// Command is a validated operation descriptor. The set of implementations is
// closed: only the variants in this package satisfy it. Absent optional
// fields are nil pointers, never empty strings.
type Command interface {
	Kind() Kind
	sealed()
}

// Some returns a pointer to v, for populating optional fields.
func Some[T any](v T) *T {
	return &v
}

type CreateAccount struct {
	Account string  `json:"account"`
	Balance float64 `json:"balance"`
}

type ViewAccount struct {
	Account string `json:"account"`
}

type DeployAurora struct {
	Path string `json:"path"`
}

type Init struct {
	ChainID            uint64  `json:"chain_id"`
	OwnerID            *string `json:"owner_id"`
	BridgeProverID     *string `json:"bridge_prover_id"`
	UpgradeDelayBlocks *uint64 `json:"upgrade_delay_blocks"`
	CustodianAddress   *string `json:"custodian_address"`
	FtMetadataPath     *string `json:"ft_metadata_path"`
}

type GetChainID struct{}

type GetNonce struct {
	Address string `json:"address"`
}

type GetBlockHash struct {
	Height uint64 `json:"height"`
}

type GetCode struct {
	Address string `json:"address"`
}

type GetBalance struct {
	Address string `json:"address"`
}

type GetUpgradeIndex struct{}

type GetVersion struct{}

type GetOwner struct{}

type SetOwner struct {
	AccountID string `json:"account_id"`
}

type GetBridgeProver struct{}

type GetStorageAt struct {
	Address string `json:"address"`
	Key     string `json:"key"`
}

type RegisterRelayer struct {
	Address string `json:"address"`
}

// PausePrecompiles carries a bit mask; each set bit selects one precompile.
type PausePrecompiles struct {
	Mask uint32 `json:"mask"`
}

type ResumePrecompiles struct {
	Mask uint32 `json:"mask"`
}

type PausedPrecompiles struct{}

type FactoryUpdate struct {
	Path string `json:"path"`
}

type FactorySetWnearAddress struct {
	Address string `json:"address"`
}

// FundXccSubAccount funds the cross-contract-call sub-account of Target.
// A nil WnearAccountID leaves the choice of wNEAR account to the executor.
type FundXccSubAccount struct {
	Target         string  `json:"target"`
	WnearAccountID *string `json:"wnear_account_id"`
	Deposit        float64 `json:"deposit"`
}

type StageUpgrade struct {
	Path string `json:"path"`
}

type DeployUpgrade struct{}

type Deploy struct {
	Code            string  `json:"code"`
	Args            *string `json:"args"`
	AbiPath         *string `json:"abi_path"`
	AuroraSecretKey *string `json:"aurora_secret_key"`
}

type ViewCall struct {
	Address  string  `json:"address"`
	Function string  `json:"function"`
	Args     *string `json:"args"`
	AbiPath  string  `json:"abi_path"`
}

type Call struct {
	Address         string  `json:"address"`
	Function        string  `json:"function"`
	Args            *string `json:"args"`
	AbiPath         string  `json:"abi_path"`
	Value           *string `json:"value"`
	AuroraSecretKey *string `json:"aurora_secret_key"`
}

type EncodeAddress struct {
	Account string `json:"account"`
}

// KeyPair requests key generation. Seed is set only when Random is false.
type KeyPair struct {
	Random bool    `json:"random"`
	Seed   *uint64 `json:"seed"`
}

func (CreateAccount) Kind() Kind          { return KindCreateAccount }
func (ViewAccount) Kind() Kind            { return KindViewAccount }
func (DeployAurora) Kind() Kind           { return KindDeployAurora }
func (Init) Kind() Kind                   { return KindInit }
func (GetChainID) Kind() Kind             { return KindGetChainID }
func (GetNonce) Kind() Kind               { return KindGetNonce }
func (GetBlockHash) Kind() Kind           { return KindGetBlockHash }
func (GetCode) Kind() Kind                { return KindGetCode }
func (GetBalance) Kind() Kind             { return KindGetBalance }
func (GetUpgradeIndex) Kind() Kind        { return KindGetUpgradeIndex }
func (GetVersion) Kind() Kind             { return KindGetVersion }
func (GetOwner) Kind() Kind               { return KindGetOwner }
func (SetOwner) Kind() Kind               { return KindSetOwner }
func (GetBridgeProver) Kind() Kind        { return KindGetBridgeProver }
func (GetStorageAt) Kind() Kind           { return KindGetStorageAt }
func (RegisterRelayer) Kind() Kind        { return KindRegisterRelayer }
func (PausePrecompiles) Kind() Kind       { return KindPausePrecompiles }
func (ResumePrecompiles) Kind() Kind      { return KindResumePrecompiles }
func (PausedPrecompiles) Kind() Kind      { return KindPausedPrecompiles }
func (FactoryUpdate) Kind() Kind          { return KindFactoryUpdate }
func (FactorySetWnearAddress) Kind() Kind { return KindFactorySetWnearAddress }
func (FundXccSubAccount) Kind() Kind      { return KindFundXccSubAccount }
func (StageUpgrade) Kind() Kind           { return KindStageUpgrade }
func (DeployUpgrade) Kind() Kind          { return KindDeployUpgrade }
func (Deploy) Kind() Kind                 { return KindDeploy }
func (ViewCall) Kind() Kind               { return KindViewCall }
func (Call) Kind() Kind                   { return KindCall }
func (EncodeAddress) Kind() Kind          { return KindEncodeAddress }
func (KeyPair) Kind() Kind                { return KindKeyPair }

func (CreateAccount) sealed()          {}
func (ViewAccount) sealed()            {}
func (DeployAurora) sealed()           {}
func (Init) sealed()                   {}
func (GetChainID) sealed()             {}
func (GetNonce) sealed()               {}
func (GetBlockHash) sealed()           {}
func (GetCode) sealed()                {}
func (GetBalance) sealed()             {}
func (GetUpgradeIndex) sealed()        {}
func (GetVersion) sealed()             {}
func (GetOwner) sealed()               {}
func (SetOwner) sealed()               {}
func (GetBridgeProver) sealed()        {}
func (GetStorageAt) sealed()           {}
func (RegisterRelayer) sealed()        {}
func (PausePrecompiles) sealed()       {}
func (ResumePrecompiles) sealed()      {}
func (PausedPrecompiles) sealed()      {}
func (FactoryUpdate) sealed()          {}
func (FactorySetWnearAddress) sealed() {}
func (FundXccSubAccount) sealed()      {}
func (StageUpgrade) sealed()           {}
func (DeployUpgrade) sealed()          {}
func (Deploy) sealed()                 {}
func (ViewCall) sealed()               {}
func (Call) sealed()                   {}
func (EncodeAddress) sealed()          {}
func (KeyPair) sealed()                {}
