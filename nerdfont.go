// Package nerdfont 在任意源文本中查找转义的 Unicode 码点，还原其表示的字符，
// 并判断这些字符是否属于 nerd font 私有区字形
//
// 管道分三步，每一步都是纯函数：
//   - Scan(): 把文本切分为转义序列标记（EscapeMarker）
//   - Combine(): 把相邻的标记合并为一个逻辑字符（CombinedRun），
//     例如以两个 \u 转义书写的 UTF-16 代理对
//   - Classify(): 还原字符并按字形范围表过滤，生成 Decoration
//
// 支持的转义形式：
//
//	\u + 4 hex    \U + 8 hex    \x + 2 hex
//	&#x + 1-4 hex    &# + 1-5 decimal    U+ + 4-6 hex
//
// 主要 API：
//   - Decorate(): 一次完成整个管道
//   - DecorateMarkdown(): 只处理 Markdown 中的行内代码和代码块
//   - NewUpdater(): 带节流的重新计算，供编辑器集成使用
//   - NewLineIndex(): 把 UTF-16 偏移量转换为行/列
//
// 示例：
//
//	for _, d := range nerdfont.Decorate(text) {
//	    fmt.Printf("[%d,%d) %s\n", d.Start, d.End, d.HoverMessage)
//	}
//
// Decoration 的偏移量以 UTF-16 code units 计算，与编辑器的文档偏移量一致。
package nerdfont
