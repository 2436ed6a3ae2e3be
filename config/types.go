// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config 配置文件里各个 key 对应的结构体，由 ioc 用 econf.UnmarshalKey 读取
package config

// SessionConfig 对应 session
type SessionConfig struct {
	SessionEncryptedKey string `yaml:"sessionEncryptedKey"`
	Cookie              struct {
		Domain string `yaml:"domain"`
	} `yaml:"cookie"`
}

// KafkaConfig 对应 kafka，启动的时候会创建 Topics
type KafkaConfig struct {
	Network   string   `yaml:"network"`
	Addresses []string `yaml:"addresses"`
	Topics    []Topic  `yaml:"topics"`
}

type Topic struct {
	Name       string `yaml:"name"`
	Partitions int    `yaml:"partitions"`
}

// CORSConfig 对应 cors，localhost 总是放行
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowedOrigins"`
}

// SnowflakeConfig 对应 snowflake，多实例部署时每个实例的 NodeID 不能相同
type SnowflakeConfig struct {
	NodeID uint `yaml:"nodeID"`
}
