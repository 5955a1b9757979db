package adapter

import (
	"fmt"
	"sort"
	"sync"

	"StrikeoutSync/internal/interfaces"

	"github.com/sirupsen/logrus"
)

// ========== 全局工厂函数注册表 ==========
var (
	factoryMu       sync.RWMutex
	factoryRegistry = make(map[string]interfaces.Factory)
)

// Register 供数据源包的init函数调用，注册工厂函数
func Register(name string, factory interfaces.Factory) {
	if factory == nil {
		panic(fmt.Sprintf("数据源%s的工厂函数不能为nil", name))
	}
	factoryMu.Lock()
	defer factoryMu.Unlock()
	if _, exists := factoryRegistry[name]; exists {
		logrus.Warnf("数据源%s已注册，将覆盖原有实现", name)
	}
	factoryRegistry[name] = factory
}

// GetFactory 获取指定数据源的工厂函数
func GetFactory(name string) (interfaces.Factory, bool) {
	factoryMu.RLock()
	defer factoryMu.RUnlock()
	factory, ok := factoryRegistry[name]
	return factory, ok
}

// ListFactories 列出所有已注册工厂函数的数据源（排序后）
func ListFactories() []string {
	factoryMu.RLock()
	defer factoryMu.RUnlock()
	names := make([]string, 0, len(factoryRegistry))
	for n := range factoryRegistry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
