package thesportsdb

import sonic "github.com/bytedance/sonic"

func decodeForTest(payload string, target any) error {
	return sonic.UnmarshalString(payload, target)
}
