// Package client turns the provider registry and the loaded credentials into
// ready-to-use provider handles.
//
// Handles are built once at startup, one per provider with a present credential.
// A provider whose handle cannot be built is logged and treated as unavailable:
//
//	reg := registry.Default()
//	creds, err := credential.LoadEnv(reg)
//	if err != nil {
//	    return err
//	}
//	set := client.NewFactory(client.WithLogger(logger)).Build(ctx, reg, creds)
//
//	if h, ok := set.Get(switchboard.ProviderAnthropic); ok {
//	    resp, err := h.Chat(ctx, messages, switchboard.WithModel(h.DefaultModel(switchboard.CapabilityChat)))
//	}
//
// Tests and embedders can assemble a set from their own backends with NewHandle and NewSet.
package client
