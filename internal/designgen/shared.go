package designgen

// sharedTypes renders src/types/index.ts
func sharedTypes() string {
	return `import type { CSSProperties, MouseEvent, ReactNode } from 'react';

export enum Variant {
  Primary = 'primary',
  Secondary = 'secondary',
  Tertiary = 'tertiary',
  Ghost = 'ghost',
}

export enum Size {
  Small = 'sm',
  Medium = 'md',
  Large = 'lg',
}

export interface BaseProps {
  className?: string;
  style?: CSSProperties;
  children?: ReactNode;
  'data-testid'?: string;
}

export interface InteractiveProps extends BaseProps {
  onClick?: (event: MouseEvent<HTMLElement>) => void;
  disabled?: boolean;
  variant?: Variant;
  size?: Size;
}

export interface TextProps extends BaseProps {
  text?: string;
  as?: 'span' | 'p' | 'h1' | 'h2' | 'h3' | 'h4' | 'h5' | 'h6' | 'label';
}
`
}

// cssModuleDeclarations lets the compiler type-check CSS module imports
func cssModuleDeclarations() string {
	return `declare module '*.module.css' {
  const classes: { readonly [key: string]: string };
  export default classes;
}
`
}

// utilities renders src/utils/index.ts
func utilities() string {
	return `import type { CSSProperties } from 'react';

export type ClassValue = string | false | null | undefined;

/** Joins class names, skipping falsy values. */
export function cn(...classes: ClassValue[]): string {
  return classes.filter(Boolean).join(' ');
}

/** Merges style objects left to right; later values win. */
export function mergeStyles(...styles: Array<CSSProperties | undefined>): CSSProperties {
  return Object.assign({}, ...styles.filter(Boolean));
}

/** Builds a deterministic data-testid from a component name. */
export function createTestId(componentName: string, suffix?: string): string {
  const base = componentName.toLowerCase();
  return suffix ? ` + "`${base}-${suffix}`" + ` : base;
}
`
}

// entryPoint renders src/index.ts
func entryPoint() string {
	return `export * from './components';
export * as types from './types';
export * from './utils';
`
}
