package command

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allVariants() []Command {
	return []Command{
		CreateAccount{}, ViewAccount{}, DeployAurora{}, Init{}, GetChainID{},
		GetNonce{}, GetBlockHash{}, GetCode{}, GetBalance{}, GetUpgradeIndex{},
		GetVersion{}, GetOwner{}, SetOwner{}, GetBridgeProver{}, GetStorageAt{},
		RegisterRelayer{}, PausePrecompiles{}, ResumePrecompiles{}, PausedPrecompiles{},
		FactoryUpdate{}, FactorySetWnearAddress{}, FundXccSubAccount{}, StageUpgrade{},
		DeployUpgrade{}, Deploy{}, ViewCall{}, Call{}, EncodeAddress{}, KeyPair{},
	}
}

func TestKinds_EveryVariantOnce(t *testing.T) {
	variants := allVariants()
	require.Len(t, variants, int(NumKinds))

	seen := make(map[Kind]bool)
	for _, v := range variants {
		k := v.Kind()
		assert.True(t, k.Valid(), "%T has invalid kind %d", v, k)
		assert.False(t, seen[k], "kind %s claimed twice", k)
		seen[k] = true
	}
	assert.Len(t, seen, int(NumKinds))
}

func TestKinds_LabelsRoundTrip(t *testing.T) {
	labels := Labels()
	require.Len(t, labels, int(NumKinds))

	for i, k := range Kinds() {
		assert.Equal(t, Kind(i), k)
		assert.Equal(t, labels[i], k.String())
		assert.NotEmpty(t, k.Description(), "kind %s has no description", k)

		parsed, ok := ParseKind(k.String())
		require.True(t, ok, "label %q does not parse", k.String())
		assert.Equal(t, k, parsed)
	}
}

func TestKinds_MenuOrder(t *testing.T) {
	labels := Labels()
	assert.Equal(t, "CreateAccount", labels[0])
	assert.Equal(t, "GetChainId", labels[KindGetChainID])
	assert.Equal(t, "KeyPair", labels[len(labels)-1])
}

func TestKind_Invalid(t *testing.T) {
	assert.False(t, NumKinds.Valid())
	assert.False(t, Kind(-1).Valid())
	assert.Equal(t, "Kind(-1)", Kind(-1).String())
	assert.Empty(t, NumKinds.Description())

	_, ok := ParseKind("getbalance")
	assert.False(t, ok)
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
		want string
	}{
		{
			name: "single identifier",
			cmd:  GetBalance{Address: "0xabc123"},
			want: `GetBalance { address: "0xabc123" }`,
		},
		{
			name: "no fields",
			cmd:  GetChainID{},
			want: "GetChainId",
		},
		{
			name: "init with every optional absent",
			cmd:  Init{ChainID: 1313161554},
			want: `Init { chain_id: 1313161554, owner_id: <none>, bridge_prover_id: <none>, ` +
				`upgrade_delay_blocks: <none>, custodian_address: <none>, ft_metadata_path: <none> }`,
		},
		{
			name: "present optionals are dereferenced",
			cmd: Init{
				ChainID:            1313161555,
				OwnerID:            Some("owner.near"),
				UpgradeDelayBlocks: Some(uint64(10)),
			},
			want: `Init { chain_id: 1313161555, owner_id: "owner.near", bridge_prover_id: <none>, ` +
				`upgrade_delay_blocks: 10, custodian_address: <none>, ft_metadata_path: <none> }`,
		},
		{
			name: "amount",
			cmd:  CreateAccount{Account: "alice.near", Balance: 1.5},
			want: `CreateAccount { account: "alice.near", balance: 1.5 }`,
		},
		{
			name: "mask",
			cmd:  PausePrecompiles{Mask: 7},
			want: "PausePrecompiles { mask: 7 }",
		},
		{
			name: "key pair with seed",
			cmd:  KeyPair{Random: false, Seed: Some(uint64(42))},
			want: "KeyPair { random: false, seed: 42 }",
		},
		{
			name: "random key pair",
			cmd:  KeyPair{Random: true},
			want: "KeyPair { random: true, seed: <none> }",
		},
		{
			name: "empty present string is quoted",
			cmd:  Call{Address: "0x1", Function: "f", AbiPath: "a.json", Value: Some("")},
			want: `Call { address: "0x1", function: "f", args: <none>, abi_path: "a.json", value: "", aurora_secret_key: <none> }`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Describe(tt.cmd))
		})
	}
}

func TestMarshalJSON(t *testing.T) {
	data, err := MarshalJSON(FundXccSubAccount{Target: "relay.aurora", Deposit: 2})
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))

	assert.Equal(t, "FundXccSubAccount", got["command"])
	fields, ok := got["fields"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "relay.aurora", fields["target"])
	assert.Equal(t, float64(2), fields["deposit"])

	v, present := fields["wnear_account_id"]
	assert.True(t, present, "absent optional fields must still be listed")
	assert.Nil(t, v)
}

func TestMarshalJSON_NoFields(t *testing.T) {
	data, err := MarshalJSON(DeployUpgrade{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"command":"DeployUpgrade","fields":{}}`, string(data))
}
