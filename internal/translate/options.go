package translate

// Options 控制翻译时的严格程度
type Options struct {
	// 只有一个候选子时也写了前/后，报 ErrRedundantModifier
	StrictModifier bool
	// 红方记谱里出现“将/卒/象/士/砲”之类黑方专用字时报错
	StrictGlyphSide bool
	// 走完后己方将帅不能被将军或与对方对脸
	GeneralSafety bool
	// FEN 解析缓存条数，0 表示不缓存
	CacheSize int
}

func DefaultOptions() Options {
	return Options{GeneralSafety: true}
}
