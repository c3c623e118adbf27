package config

import (
	"log"
	"sync"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                  int
	RoundRobinTimeQuantum int
	// Sweep bounds of 0 mean "derive the range from the process set".
	SweepMinQuantum int
	SweepMaxQuantum int
}

var once sync.Once
var config *SchedulerConfig

func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("./")
		viper.SetDefault("port", 9095)
		viper.SetDefault("scheduler.round_robin.time_quantum", 4)
		viper.SetDefault("scheduler.sweep.min_quantum", 0)
		viper.SetDefault("scheduler.sweep.max_quantum", 0)
		if err := viper.ReadInConfig(); err != nil {
			if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
				log.Fatalln(err)
			}
			log.Println("no config file found, using defaults")
		}
		config = &SchedulerConfig{}
		config.Port = viper.GetInt("port")
		config.RoundRobinTimeQuantum = viper.GetInt("scheduler.round_robin.time_quantum")
		config.SweepMinQuantum = viper.GetInt("scheduler.sweep.min_quantum")
		config.SweepMaxQuantum = viper.GetInt("scheduler.sweep.max_quantum")
	})

	return config
}
